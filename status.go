// SPDX-License-Identifier: Apache-2.0

package gssname

import (
	"errors"
	"strings"
)

// FatalStatus represents a fatal error returned by a provider. The Go bindings use Go's
// standard error interface instead of the major and minor status codes specified in
// RFC 2743 § 1.2.1: providers translate the routine-error field of a major status into a
// FatalErrorCode and any minor (mechanism-specific) codes into MechErrors.
//
// FatalStatus implements multi-error unwrapping, so errors.Is can be used against the
// package sentinel errors (ErrBadName, ErrBadNameType, ...) as well as against any
// mechanism errors carried in MechErrors.
//
// The name calls never set supplementary-information bits, so unlike the message
// protection calls of the full GSSAPI there is no informational status here.
type FatalStatus struct {
	FatalErrorCode FatalErrorCode // The fatal error code
	MechErrors     []error        // Mechanism-specific errors from the minor status
}

// FatalErrorCode represents fatal error codes. Values of runtime error codes are the same
// as the C bindings for compatibility. See RFC 2744 § 3.9.1.
type FatalErrorCode uint32

const (
	complete FatalErrorCode = iota
	errBadMech
	errBadName
	errBadNameType
	errBadBindings
	errBadStatus
	errBadMic
	errNoCred
	errNoContext
	errDefectiveToken
	errDefectiveCredential
	errCredentialsExpired
	errContextExpired
	errFailure
	errBadQop
	errUnauthorized
	errUnavailable
	errDuplicateElement
	errNameNotMn
)

// Fatal error variables that correspond to the fatal error codes defined by RFC 2743.
// These variables implement the error interface and can be used with Go's standard
// error handling. Providers return them (usually wrapped in a FatalStatus) from the
// name primitives:
//
//   - ErrBadName / ErrDefectiveToken: malformed input to ImportName
//   - ErrBadNameType: an unsupported name type was passed to ImportName
//   - ErrBadMech: the requested mechanism cannot canonicalize the name
//   - ErrNameNotMn / ErrUnavailable: the name cannot be exported

var ErrBadMech = errors.New("an unsupported mechanism was requested")
var ErrBadName = errors.New("an invalid name was supplied")
var ErrBadNameType = errors.New("a supplied name was of an unsupported type")
var ErrBadBindings = errors.New("incorrect channel bindings were supplied")
var ErrBadStatus = errors.New("an invalid status code was supplied")
var ErrBadMic = errors.New("a token had an invalid signature")
var ErrNoCred = errors.New("no credentials were supplied, or the credentials were unavailable or inaccessible")
var ErrNoContext = errors.New("no context has been established")
var ErrDefectiveToken = errors.New("invalid token was supplied")
var ErrDefectiveCredential = errors.New("invalid credential was supplied")
var ErrCredentialsExpired = errors.New("the referenced credentials have expired")
var ErrContextExpired = errors.New("the context has expired")
var ErrFailure = errors.New("unspecified GSS failure.  Minor code may provide more information")
var ErrBadQop = errors.New("the quality-of-protection (QOP) requested could not be provided")
var ErrUnauthorized = errors.New("the operation is forbidden by local security policy")
var ErrUnavailable = errors.New("the operation or option is not available or supported")
var ErrDuplicateElement = errors.New("the requested credential element already exists")
var ErrNameNotMn = errors.New("the provided name was not mechanism specific (MN)")

// Fatal maps the fatal error code to its sentinel error. An unknown code maps
// to ErrBadStatus.
func (s FatalStatus) Fatal() error {
	switch s.FatalErrorCode {
	default:
		return ErrBadStatus
	case errBadMech:
		return ErrBadMech
	case errBadName:
		return ErrBadName
	case errBadNameType:
		return ErrBadNameType
	case errBadBindings:
		return ErrBadBindings
	case errBadStatus:
		return ErrBadStatus
	case errBadMic:
		return ErrBadMic
	case errNoCred:
		return ErrNoCred
	case errNoContext:
		return ErrNoContext
	case errDefectiveToken:
		return ErrDefectiveToken
	case errDefectiveCredential:
		return ErrDefectiveCredential
	case errCredentialsExpired:
		return ErrCredentialsExpired
	case errContextExpired:
		return ErrContextExpired
	case errFailure:
		return ErrFailure
	case errBadQop:
		return ErrBadQop
	case errUnauthorized:
		return ErrUnauthorized
	case errUnavailable:
		return ErrUnavailable
	case errDuplicateElement:
		return ErrDuplicateElement
	case errNameNotMn:
		return ErrNameNotMn
	}
}

func (s FatalStatus) Unwrap() []error {
	ret := []error{}

	if s.FatalErrorCode != complete {
		ret = append(ret, s.Fatal())
	}

	ret = append(ret, s.MechErrors...)

	return ret
}

func (s FatalStatus) Error() string {
	var parts []string

	if s.FatalErrorCode != complete {
		fatal := s.Fatal()
		// only include the spiel about maybe the minor code being helpful if we do
		// actually have a mech error (from the minor code)
		if !(fatal == ErrFailure && len(s.MechErrors) > 0) {
			parts = append(parts, fatal.Error())
		}
	}

	if s.MechErrors != nil {
		mechStrs := make([]string, len(s.MechErrors))
		for i, e := range s.MechErrors {
			mechStrs[i] = e.Error()
		}
		parts = append(parts, strings.Join(mechStrs, "; "))
	}

	return strings.Join(parts, ".  ")
}
