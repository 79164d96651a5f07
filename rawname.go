// SPDX-License-Identifier: Apache-2.0

package gssname

// RawName represents the underlying, provider-owned GSSAPI name object (types INTERNAL
// NAME and MN from RFC 2743 § 4). This interface is the boundary consumed by the
// high-level Name type: every name-related call of RFC 2743 § 2.4 appears here and is
// implemented by a provider, never by this package.
//
// Raw name handles are opaque and immutable; canonicalization and duplication produce
// new handles rather than mutating the receiver. Handles are not safe for concurrent
// use unless the provider documents otherwise.
type RawName interface {
	// Compare implements GSS_Compare_name from RFC 2743 § 2.4.3.
	// It determines whether the two names denote the same principal. Comparison is a
	// mechanism decision; two textually different names may compare equal.
	//
	// Parameters:
	//   - other: the second name for comparison. Must originate from the same provider.
	//
	// Returns:
	//   - equal: boolean value indicating whether the two names are equal
	//   - err: error if one occurred, otherwise nil
	Compare(other RawName) (equal bool, err error) // RFC 2743 § 2.4.3

	// Display implements GSS_Display_name from RFC 2743 § 2.4.4.
	// It returns the display octets of the name and the name's current type. The
	// octets are in the provider's display character set; use Name.Text for a
	// decoded Go string.
	//
	// Returns:
	//   - value: display octets of the name
	//   - nt: type of the name
	//   - err: error if one occurred, otherwise nil
	Display() (value []byte, nt NameType, err error) // RFC 2743 § 2.4.4

	// Release implements GSS_Release_name from RFC 2743 § 2.4.6.
	// It releases the name when it is no longer required.
	Release() error // RFC 2743 § 2.4.6

	// InquireMechs implements GSS_Inquire_mechs_for_name from RFC 2743 § 2.4.13.
	// It returns the set of mechanisms that support the name.
	InquireMechs() (mechs []Mech, err error) // RFC 2743 § 2.4.13

	// Canonicalize implements GSS_Canonicalize_name from RFC 2743 § 2.4.14.
	// It produces a new handle holding the mechanism-specific form (MN) of the name;
	// the receiver is not modified.
	//
	// Parameters:
	//   - mech: the explicit mechanism to be used to canonicalize the name
	//
	// Returns:
	//   - name: the canonical RawName. This must be released using RawName.Release()
	//   - err: ErrBadMech if the mechanism cannot canonicalize this name type
	Canonicalize(mech Mech) (name RawName, err error) // RFC 2743 § 2.4.14

	// Export creates an exported byte representation of a mechanism name (MN),
	// corresponding to the GSS_Export_name call defined in RFC 2743 § 2.4.15.
	//
	// The exported token can be imported using Provider.ImportName() with the
	// GSS_NT_EXPORT_NAME name type, even after the original name has been released.
	//
	// Returns:
	//   - exp: the exported name token
	//   - err: ErrNameNotMn if the name is not an MN, or ErrUnavailable if the
	//     mechanism does not support export for this name's type
	Export() (exp []byte, err error) // RFC 2743 § 2.4.15

	// Duplicate implements GSS_Duplicate_name from RFC 2743 § 2.4.16.
	// It creates an independently owned copy of the name that remains valid even if
	// the source name is released.
	//
	// Returns:
	//   - name: the duplicated name. This must be released using RawName.Release()
	//   - err: error if one occurred, otherwise nil
	Duplicate() (name RawName, err error) // RFC 2743 § 2.4.16
}
