// SPDX-License-Identifier: Apache-2.0

package gssname

import (
	"fmt"
)

// Name is a high-level handle for a GSSAPI principal name. It owns an underlying
// provider name object (RawName) and implements every operation by delegating to the
// provider's primitives: display, comparison, canonicalization, export and
// duplication. It adds no caching, no locking and no protocol logic of its own.
//
// A Name is immutable from the caller's perspective. Canonicalize and Duplicate
// return new, independently owned handles; the receiver is never modified. Release
// frees the underlying handle, after which the behaviour of the other methods is
// provider-defined (typically ErrBadName).
type Name struct {
	prov Provider
	raw  RawName
}

type nameOptions struct {
	token     []byte
	raw       RawName
	value     []byte
	text      string
	haveValue bool
	haveText  bool
	nameType  NameType
}

// NameOption configures the construction of a Name. Exactly one input mode
// (token, raw handle, or display value) must be supplied to New.
type NameOption func(o *nameOptions)

// WithToken constructs the name from a token previously produced by Name.Export.
// The token is imported under the reserved GSS_NT_EXPORT_NAME name type.
func WithToken(token []byte) NameOption {
	return func(o *nameOptions) {
		o.token = token
	}
}

// WithRawName wraps an existing provider name handle directly. No provider call is
// made; the new Name takes ownership of the handle.
func WithRawName(raw RawName) NameOption {
	return func(o *nameOptions) {
		o.raw = raw
	}
}

// WithValue constructs the name from a display string under the given name type.
// The string is encoded with the configured display encoding before being passed
// to the provider's import primitive.
func WithValue(value string, nt NameType) NameOption {
	return func(o *nameOptions) {
		o.text = value
		o.haveText = true
		o.nameType = nt
	}
}

// WithValueBytes constructs the name from raw name-type specific octets under the
// given name type, bypassing the display encoding.
func WithValueBytes(value []byte, nt NameType) NameOption {
	return func(o *nameOptions) {
		o.value = value
		o.haveValue = true
		o.nameType = nt
	}
}

// New constructs a Name from one of three input modes, checked in this order:
//
//  1. an exported-name token (WithToken), imported under GSS_NT_EXPORT_NAME
//  2. an existing raw handle (WithRawName), wrapped without any provider call
//  3. a display value and name type (WithValue or WithValueBytes), passed to the
//     provider's import primitive
//
// The modes are mutually exclusive; when more than one is supplied the first in the
// order above wins. Supplying none returns ErrBadName. Import failures are the
// provider's errors, propagated unchanged: ErrBadName or ErrDefectiveToken for
// malformed input, ErrBadNameType for an unsupported name type.
func New(p Provider, opts ...NameOption) (*Name, error) {
	o := nameOptions{nameType: GSS_NO_OID}
	for _, f := range opts {
		f(&o)
	}

	switch {
	case o.token != nil:
		raw, err := p.ImportName(o.token, GSS_NT_EXPORT_NAME)
		if err != nil {
			return nil, err
		}
		return &Name{prov: p, raw: raw}, nil

	case o.raw != nil:
		return &Name{prov: p, raw: o.raw}, nil

	case o.haveText:
		value, err := encodeDisplay(DisplayEncoding(), o.text)
		if err != nil {
			return nil, err
		}
		o.value = value
		fallthrough

	case o.haveValue:
		raw, err := p.ImportName(o.value, o.nameType)
		if err != nil {
			return nil, err
		}
		return &Name{prov: p, raw: raw}, nil
	}

	return nil, ErrBadName
}

// Import is shorthand for New with WithValue: it imports a display string under
// the given name type.
func Import(p Provider, value string, nt NameType) (*Name, error) {
	return New(p, WithValue(value, nt))
}

// FromToken is shorthand for New with WithToken: it imports a token previously
// produced by Name.Export.
func FromToken(p Provider, token []byte) (*Name, error) {
	return New(p, WithToken(token))
}

// FromRaw wraps an existing provider name handle. The returned Name takes
// ownership of the handle.
func FromRaw(p Provider, raw RawName) *Name {
	return &Name{prov: p, raw: raw}
}

// Provider returns the provider that owns the underlying handle.
func (n *Name) Provider() Provider {
	return n.prov
}

// Raw returns the underlying provider name handle, for use with provider-specific
// calls. Ownership stays with the Name; do not release the returned handle.
func (n *Name) Raw() RawName {
	return n.raw
}

// Bytes returns the display octets of the name, exactly as produced by the
// provider's display primitive. The result is stable: two calls on the same
// handle yield identical octets.
func (n *Name) Bytes() ([]byte, error) {
	value, _, err := n.raw.Display()
	return value, err
}

// Text returns the human-readable display form of the name: the display octets
// decoded with the configured display encoding (UTF-8 unless changed with
// SetDisplayEncoding).
func (n *Name) Text() (string, error) {
	value, _, err := n.raw.Display()
	if err != nil {
		return "", err
	}

	return decodeDisplay(DisplayEncoding(), value)
}

// NameType returns the current type of the name. The provider is queried on every
// call rather than the answer being cached: canonicalization can change the
// effective type reported for a handle.
func (n *Name) NameType() (NameType, error) {
	_, nt, err := n.raw.Display()
	return nt, err
}

// Comparison is the result of Name.Equals.
type Comparison int

const (
	// Incomparable means the other value is not a name handle this package
	// recognizes; nothing can be said about equality. It is not an error.
	Incomparable Comparison = iota
	NotEqual
	Equal
)

func (c Comparison) String() string {
	switch c {
	case Incomparable:
		return "incomparable"
	case NotEqual:
		return "not equal"
	case Equal:
		return "equal"
	}

	return "unknown"
}

// Equals compares this name against an arbitrary value. If other is a *Name or a
// RawName, the provider's comparison primitive decides equality; comparison is
// never byte-wise, since two textually different names may denote the same
// principal. Any other value yields Incomparable with a nil error, so callers
// implementing generic equality can fall back to another strategy.
//
// The provider's comparison errors are propagated unchanged; the Comparison value
// is Incomparable in that case and should be ignored.
func (n *Name) Equals(other any) (Comparison, error) {
	var otherRaw RawName

	switch o := other.(type) {
	case *Name:
		otherRaw = o.raw
	case RawName:
		otherRaw = o
	default:
		return Incomparable, nil
	}

	equal, err := n.raw.Compare(otherRaw)
	switch {
	case err != nil:
		return Incomparable, err
	case equal:
		return Equal, nil
	}

	return NotEqual, nil
}

// Compare determines whether two names denote the same principal, by delegating to
// the provider's comparison primitive.
func (n *Name) Compare(other *Name) (bool, error) {
	return n.raw.Compare(other.raw)
}

// String renders a constructor-like diagnostic form embedding the display value and
// the reported name type, e.g.
//
//	Name("user@EXAMPLE.COM", GSS_KRB5_NT_PRINCIPAL_NAME)
//
// It is best effort and never suitable for round-tripping; use Export for that.
func (n *Name) String() string {
	value, nt, err := n.raw.Display()
	if err != nil {
		return fmt.Sprintf("Name(invalid: %v)", err)
	}

	text, err := decodeDisplay(DisplayEncoding(), value)
	if err != nil {
		return fmt.Sprintf("Name(%q, %s)", value, nt)
	}

	return fmt.Sprintf("Name(%q, %s)", text, nt)
}

// Export produces the mechanism-independent exported token for the name
// (RFC 2743 § 3.2), suitable for storage or transmission. The token can be turned
// back into an equal Name with FromToken. Providers fail with ErrNameNotMn or
// ErrUnavailable when the name's type does not support export.
func (n *Name) Export() ([]byte, error) {
	return n.raw.Export()
}

// Canonicalize returns a new Name holding this name's canonical (mechanism-specific)
// form under the requested mechanism. The receiver is unchanged: its type and
// display octets are exactly as before. Fails with ErrBadMech when the mechanism
// cannot canonicalize this name's type.
func (n *Name) Canonicalize(mech Mech) (*Name, error) {
	raw, err := n.raw.Canonicalize(mech)
	if err != nil {
		return nil, err
	}

	return &Name{prov: n.prov, raw: raw}, nil
}

// Duplicate returns an independently owned copy of the name, created with the
// provider's duplication primitive. The copy compares equal to the original but has
// its own lifetime: releasing one does not affect the other, even if the provider
// reference-counts internally.
func (n *Name) Duplicate() (*Name, error) {
	raw, err := n.raw.Duplicate()
	if err != nil {
		return nil, err
	}

	return &Name{prov: n.prov, raw: raw}, nil
}

// InquireMechs returns the set of mechanisms that support this name.
func (n *Name) InquireMechs() ([]Mech, error) {
	return n.raw.InquireMechs()
}

// Release frees the underlying provider handle. The Name must not be used
// afterwards; duplicates and canonical forms created from it remain valid.
func (n *Name) Release() error {
	return n.raw.Release()
}
