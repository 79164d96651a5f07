// SPDX-License-Identifier: Apache-2.0

package gssname

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// In-memory naming provider with Kerberos-flavoured semantics, used by the Name
// tests. It implements the full RawName contract: names without a realm
// canonicalize into the test realm, canonical names (MNs) export to an
// RFC 2743 § 3.2 shaped token, and released handles reject further calls.

const fakeRealm = "EXAMPLE.COM"

// exported name token header from RFC 2743 § 3.2
var fakeTokenHeader = []byte{0x04, 0x01}

type fakeProvider struct{}

func newFakeProvider() (Provider, error) {
	return fakeProvider{}, nil
}

func (fakeProvider) Name() string {
	return "test-inmem"
}

func (fakeProvider) ImportName(value []byte, nameType NameType) (RawName, error) {
	switch nameType {
	case GSS_NT_EXPORT_NAME:
		return parseFakeToken(value)

	case GSS_NT_USER_NAME, GSS_NT_HOSTBASED_SERVICE, GSS_KRB5_NT_PRINCIPAL_NAME, GSS_KRB5_NT_ENTERPRISE_NAME:
		if len(value) == 0 || bytes.IndexByte(value, 0) >= 0 {
			return nil, FatalStatus{FatalErrorCode: errBadName}
		}

		return &fakeName{value: string(value), nt: nameType}, nil
	}

	return nil, FatalStatus{FatalErrorCode: errBadNameType}
}

func (fakeProvider) InquireNamesForMech(m Mech) ([]NameType, error) {
	if m != GSS_MECH_KRB5 {
		return nil, FatalStatus{FatalErrorCode: errBadMech}
	}

	return []NameType{
		GSS_NT_USER_NAME,
		GSS_NT_HOSTBASED_SERVICE,
		GSS_NT_EXPORT_NAME,
		GSS_KRB5_NT_PRINCIPAL_NAME,
		GSS_KRB5_NT_ENTERPRISE_NAME,
	}, nil
}

func (fakeProvider) IndicateMechs() ([]Mech, error) {
	return []Mech{GSS_MECH_KRB5}, nil
}

type fakeName struct {
	value    string
	nt       NameType
	mn       bool
	released bool
}

// canonical returns the principal form of the name under the test realm:
// "user" becomes "user@EXAMPLE.COM" and the host-based "svc@host" becomes
// "svc/host@EXAMPLE.COM". Names that already carry a realm are unchanged.
func (n *fakeName) canonical() string {
	if n.nt == GSS_NT_HOSTBASED_SERVICE {
		princ := strings.Replace(n.value, "@", "/", 1)
		return princ + "@" + fakeRealm
	}

	if strings.Contains(n.value, "@") {
		return n.value
	}

	return n.value + "@" + fakeRealm
}

func (n *fakeName) Compare(other RawName) (bool, error) {
	otherName, ok := other.(*fakeName)
	if !ok {
		return false, fmt.Errorf("can't compare %T with %T: %w", n, other, ErrBadName)
	}

	if n.released || otherName.released {
		return false, FatalStatus{FatalErrorCode: errBadName}
	}

	return n.canonical() == otherName.canonical(), nil
}

func (n *fakeName) Display() ([]byte, NameType, error) {
	if n.released {
		return nil, GSS_NO_OID, FatalStatus{FatalErrorCode: errBadName}
	}

	return []byte(n.value), n.nt, nil
}

func (n *fakeName) Release() error {
	n.released = true
	return nil
}

func (n *fakeName) InquireMechs() ([]Mech, error) {
	if n.released {
		return nil, FatalStatus{FatalErrorCode: errBadName}
	}

	return []Mech{GSS_MECH_KRB5}, nil
}

func (n *fakeName) Canonicalize(mech Mech) (RawName, error) {
	if n.released {
		return nil, FatalStatus{FatalErrorCode: errBadName}
	}

	if mech != GSS_MECH_KRB5 {
		return nil, FatalStatus{FatalErrorCode: errBadMech}
	}

	return &fakeName{value: n.canonical(), nt: GSS_KRB5_NT_PRINCIPAL_NAME, mn: true}, nil
}

func (n *fakeName) Export() ([]byte, error) {
	if n.released {
		return nil, FatalStatus{FatalErrorCode: errBadName}
	}

	if !n.mn {
		return nil, FatalStatus{FatalErrorCode: errNameNotMn}
	}

	mechOid := GSS_MECH_KRB5.Oid()

	buf := bytes.Buffer{}
	buf.Write(fakeTokenHeader)
	_ = binary.Write(&buf, binary.BigEndian, uint16(len(mechOid)+2)) //nolint:gosec
	buf.WriteByte(0x06)
	buf.WriteByte(byte(len(mechOid)))
	buf.Write(mechOid)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(n.value))) //nolint:gosec
	buf.WriteString(n.value)

	return buf.Bytes(), nil
}

func (n *fakeName) Duplicate() (RawName, error) {
	if n.released {
		return nil, FatalStatus{FatalErrorCode: errBadName}
	}

	return &fakeName{value: n.value, nt: n.nt, mn: n.mn}, nil
}

func parseFakeToken(token []byte) (RawName, error) {
	bad := FatalStatus{FatalErrorCode: errDefectiveToken}

	if len(token) < 4 || !bytes.Equal(token[:2], fakeTokenHeader) {
		return nil, bad
	}

	oidLen := int(binary.BigEndian.Uint16(token[2:4]))
	rest := token[4:]
	if len(rest) < oidLen || oidLen < 2 {
		return nil, bad
	}

	der := rest[:oidLen]
	if der[0] != 0x06 || int(der[1]) != oidLen-2 {
		return nil, bad
	}

	mech, err := MechFromOid(Oid(der[2:]))
	if err != nil || mech != GSS_MECH_KRB5 {
		return nil, bad
	}

	rest = rest[oidLen:]
	if len(rest) < 4 {
		return nil, bad
	}

	nameLen := int(binary.BigEndian.Uint32(rest[:4]))
	rest = rest[4:]
	if len(rest) != nameLen {
		return nil, bad
	}

	return &fakeName{value: string(rest), nt: GSS_KRB5_NT_PRINCIPAL_NAME, mn: true}, nil
}
