// SPDX-License-Identifier: Apache-2.0

package gssname

// Oid represents an Object Identifier as used throughout GSSAPI. Elements of the byte slice
// represent the DER encoding of the object identifier, excluding the ASN.1 header (two bytes:
// tag value 0x06 and length).
//
// Name types and mechanisms are identified on the wire by OIDs, but this package exposes them
// as the concrete NameType and Mech types together with functions for translating between
// those types and their OIDs. The empty or nil Oid value does not have any special meaning.
type Oid []byte
