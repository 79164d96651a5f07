// SPDX-License-Identifier: Apache-2.0

package gssname

import (
	"errors"
	"sync"
)

var ErrProviderNotFound = errors.New("provider not found")

var registry struct {
	sync.Mutex
	libs map[string]ProviderConstructor
}

func init() {
	registry.libs = make(map[string]ProviderConstructor)
}

// ProviderConstructor defines the function signature passed to RegisterProvider, used
// by the registration interface to create new instances of a provider.
type ProviderConstructor func() (Provider, error)

// RegisterProvider associates the supplied provider factory with the unique
// name for the provider. If a provider with name is already registered, the new
// factory function will replace the existing registration.
//
// Providers must register themselves by calling RegisterProvider in their
// init() function, and should document the unique name used in their call
// to RegisterProvider.
//
// Parameters:
//   - name: unique name (identifier) of the provider. The author should document this
//     identifier for consumption by users of the provider.
//   - f: function that can be used to instantiate the provider
//
// The function always succeeds.
func RegisterProvider(name string, f ProviderConstructor) {
	registry.Lock()
	defer registry.Unlock()

	registry.libs[name] = f
}

// NewProvider is used to instantiate a provider given its unique name. It does this by
// calling the provider factory function registered against the name.
//
// Parameters:
//   - name: unique name of a previously registered provider
//
// Returns:
//   - p: provider instance
//   - err: ErrProviderNotFound if name is not registered, or the constructor's error
func NewProvider(name string) (p Provider, err error) {
	registry.Lock()
	defer registry.Unlock()

	f, ok := registry.libs[name]
	if !ok {
		return nil, ErrProviderNotFound
	}

	return f()
}

// MustNewProvider wraps NewProvider in a panic.
//
// Parameters:
//   - name: unique name of a previously registered provider
//
// Returns:
//   - provider instance
//
// Panics if the provider name is not registered or its constructor returns an error.
func MustNewProvider(name string) Provider {
	registry.Lock()
	defer registry.Unlock()

	f, ok := registry.libs[name]
	if !ok {
		panic("GSSAPI name provider not found: " + name)
	}

	p, err := f()
	if err != nil {
		panic(err)
	}

	return p
}

// Provider is the interface that defines the top level calls of a GSSAPI naming
// implementation: the factory for name handles plus the discovery calls. Everything
// the high-level Name type does is delegated to a Provider or to the RawName handles
// it creates.
type Provider interface {
	// Name returns the unique name of the provider.
	Name() string

	// ImportName corresponds to the GSS_Import_name function from RFC 2743 § 2.4.5.
	// Parameters:
	//   value:    A name-type specific octet string. When nameType is
	//             GSS_NT_EXPORT_NAME, value is a token previously produced by
	//             RawName.Export.
	//   nameType: One of the NameType constants.
	// Returns:
	//   A GSSAPI Internal Name (IN) that should be freed using RawName.Release().
	//   Fails with ErrBadName or ErrDefectiveToken if value is malformed, or
	//   ErrBadNameType if the name type is not supported.
	ImportName(value []byte, nameType NameType) (RawName, error) // RFC 2743 § 2.4.5

	// InquireNamesForMech corresponds to the GSS_Inquire_names_for_mech function
	// from RFC 2743 § 2.4.12.  It returns the name types supported by a specified
	// mechanism.
	InquireNamesForMech(m Mech) ([]NameType, error) // RFC 2743 § 2.4.12

	// IndicateMechs corresponds to the GSS_Indicate_mechs function from RFC 2743 § 2.4.2.
	IndicateMechs() ([]Mech, error) // RFC 2743 § 2.4.2
}
