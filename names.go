// SPDX-License-Identifier: Apache-2.0

package gssname

import (
	"slices"
)

//go:generate  go run ./build-tools/gen-oid-tables -kind names -o names_gen.go

// NameType describes a GSSAPI Name Type (NT) as described in RFC 2743 § 4: a tag
// classifying the syntax and namespace of a principal-name string.
type NameType int

// NOTE: if the order here changes also change
// gen-oid-tables.go!

const (
	// Host-based name form (RFC 2743 § 4.1),      "service@host" or just "service"
	GSS_NT_HOSTBASED_SERVICE NameType = iota

	// User name form (RFC 2743 § 4.2),            "username" : named local user
	GSS_NT_USER_NAME

	// Machine UID form (RFC 2743 § 4.3),           Numeric user ID in host byte order; use ImportName to convert to user name form
	GSS_NT_MACHINE_UID_NAME

	// Machine UID form (RFC 2743 § 4.4),           Same as GSS_NT_MACHINE_UID_NAME but as a string of digits
	GSS_NT_STRING_UID_NAME

	// Anonymous name type (RFC 2743 § 4.5),        an anonymous principal
	GSS_NT_ANONYMOUS

	// Default name type (RFC 2743 § 4.6),          Null input value, not an actual OID; indicates name based on mech-specific default syntax
	GSS_NO_OID

	// Exported name type (RFC 2743 § 4.7),         Mech-independent exported name type from RFC 2743 § 3.2.
	// This is the reserved sentinel passed to Provider.ImportName when the input is a
	// token previously produced by Name.Export or RawName.Export.
	GSS_NT_EXPORT_NAME

	// No name type (RFC 2743 § 4.8),               Indicates that no name is being passed
	GSS_NO_NAME

	// Composite name type (RFC 6680 § 8)			Exported name including name attributes
	GSS_NT_COMPOSITE_EXPORT

	// Mech specific name types

	// Kerberos Principal Name (RFC 1964 § 2.1.1)           Kerberos principal name with optional @REALM
	GSS_KRB5_NT_PRINCIPAL_NAME

	// Kerberos Enterprise Principal Name (RFC 8606 § 5)    Kerberos principal alias
	GSS_KRB5_NT_ENTERPRISE_NAME

	// Kerberos X.509 DER-encoded certificate               For S4U2Self (MIT Kerberos 1.19)
	GSS_KRB5_NT_X509_CERT

	_GSS_NAME_TYPE_LAST
)

// Oid returns the object identifier corresponding to the name type.
func (nt NameType) Oid() Oid {
	if nt >= _GSS_NAME_TYPE_LAST || nt < 0 {
		panic(ErrBadNameType)
	}

	return nameTypes[nt].oid
}

// OidString returns a printable version of the object identifier associated with the name type.
func (nt NameType) OidString() string {
	if nt >= _GSS_NAME_TYPE_LAST || nt < 0 {
		panic(ErrBadNameType)
	}

	return nameTypes[nt].oidString
}

// String returns a printable version of the name type.
func (nt NameType) String() string {
	if nt >= _GSS_NAME_TYPE_LAST || nt < 0 {
		panic(ErrBadNameType)
	}

	return nameTypes[nt].name
}

// NameTypeFromOid returns the name type associated with an OID. Alternate (historic)
// OIDs for a name type are matched as well as the primary OID. A nil OID maps to
// GSS_NO_OID.
//
// Providers that need a name type not defined here can add it to the table via a pull
// request, or supply their own NameType-compatible mapping.
//
// Parameters:
//   - oid: the object identifier to look up
//
// Returns:
//   - NameType: the corresponding name type
//   - error: ErrBadNameType if the OID is not recognized
func NameTypeFromOid(oid Oid) (NameType, error) {
	for i, nt := range nameTypes {
		if slices.Equal(nt.oid, oid) {
			return NameType(i), nil
		}

		for _, alt := range nt.altOids {
			if slices.Equal(alt, oid) {
				return NameType(i), nil
			}
		}
	}

	return 0, ErrBadNameType
}
