// SPDX-License-Identifier: Apache-2.0

package gssname

import "slices"

//go:generate  go run ./build-tools/gen-oid-tables -kind mechs -o mechs_gen.go

// Mech describes a GSSAPI mechanism. Mechanisms are identified by unique object
// identifiers (OIDs); this package defines concrete values for the well known
// mechanisms, used when asking for the canonical (mechanism-specific) form of a name.
type Mech int

// Well known GSSAPI mechanisms.
const (
	// Official Kerberos Mechanism (IETF)
	GSS_MECH_KRB5 Mech = iota
	GSS_MECH_IAKERB
	GSS_MECH_SPNEGO
	GSS_MECH_SPKM
	_GSS_MECH_LAST
)

// Oid returns the object identifier corresponding to the mechanism.
func (mech Mech) Oid() Oid {
	if mech >= _GSS_MECH_LAST || mech < 0 {
		panic(ErrBadMech)
	}

	return mechs[mech].oid
}

// OidString returns a printable version of the object identifier associated with the mechanism.
func (mech Mech) OidString() string {
	if mech >= _GSS_MECH_LAST || mech < 0 {
		panic(ErrBadMech)
	}

	return mechs[mech].oidString
}

// String returns a printable version of the mechanism name.
func (mech Mech) String() string {
	if mech >= _GSS_MECH_LAST || mech < 0 {
		panic(ErrBadMech)
	}

	return mechs[mech].mech
}

// MechFromOid returns the mechanism associated with an OID. Alternate (historic)
// OIDs for a mechanism are matched as well as the primary OID.
//
// Parameters:
//   - oid: the object identifier to look up
//
// Returns:
//   - Mech: the corresponding mechanism
//   - error: ErrBadMech if the OID is not recognized
func MechFromOid(oid Oid) (Mech, error) {
	for i, mech := range mechs {
		if slices.Equal(mech.oid, oid) {
			return Mech(i), nil
		}

		for _, alt := range mech.altOids {
			if slices.Equal(alt, oid) {
				return Mech(i), nil
			}
		}
	}

	return 0, ErrBadMech
}
