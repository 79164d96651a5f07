// SPDX-License-Identifier: Apache-2.0

/*
Package gssname provides a convenient, high-level handle for GSSAPI principal names
(RFC 2743 § 4) on top of pluggable naming providers.

The package itself implements no GSSAPI mechanism: every operation on a [Name] —
import, display, comparison, canonicalization, export, duplication — is a direct
delegation to a [Provider] and the [RawName] handles it creates. Providers (for
example bindings to a platform GSSAPI library) register themselves in their init()
function:

	func init() {
		gssname.RegisterProvider("my-provider", newProvider)
	}

Callers then obtain the provider by its documented name and construct name handles
from a display string, an exported token, or an existing raw handle:

	p := gssname.MustNewProvider("my-provider")

	name, err := gssname.Import(p, "user@EXAMPLE.COM", gssname.GSS_KRB5_NT_PRINCIPAL_NAME)
	if err != nil {
		// ...
	}
	defer name.Release()

	mn, err := name.Canonicalize(gssname.GSS_MECH_KRB5)

Equality is decided by the provider's comparison primitive, never by comparing
display strings; see [Name.Equals] and [Name.Compare].

Display octets are decoded using a process-wide encoding, UTF-8 by default; see
[SetDisplayEncoding].

The provider registry and the display-encoding setting are safe for concurrent use.
Individual name handles are not: this package adds no locking around provider calls,
so a handle must not be used from multiple goroutines unless the provider documents
that its primitives are thread safe.
*/
package gssname
