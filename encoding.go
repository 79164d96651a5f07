// SPDX-License-Identifier: Apache-2.0

package gssname

import (
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// The character set of GSSAPI display strings is a property of the underlying library
// (and ultimately of the environment it was built for), not of this package, so the
// encoding used to decode display octets is process-wide configuration rather than a
// per-name attribute. The default is UTF-8, which matches every modern GSSAPI
// implementation; callers on legacy systems can install a different encoding from
// golang.org/x/text/encoding at startup.
var displayEncoding = struct {
	sync.RWMutex
	enc encoding.Encoding
}{enc: unicode.UTF8}

// SetDisplayEncoding installs the text encoding used to decode name display octets
// (Name.Text) and to encode string name values passed to ImportName. It affects the
// whole process and is intended to be called once during initialization.
func SetDisplayEncoding(enc encoding.Encoding) {
	displayEncoding.Lock()
	defer displayEncoding.Unlock()

	displayEncoding.enc = enc
}

// DisplayEncoding returns the encoding currently used for name display strings.
func DisplayEncoding() encoding.Encoding {
	displayEncoding.RLock()
	defer displayEncoding.RUnlock()

	return displayEncoding.enc
}

func decodeDisplay(enc encoding.Encoding, value []byte) (string, error) {
	decoded, err := enc.NewDecoder().Bytes(value)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

func encodeDisplay(enc encoding.Encoding, value string) ([]byte, error) {
	return enc.NewEncoder().Bytes([]byte(value))
}
