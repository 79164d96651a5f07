// SPDX-License-Identifier: Apache-2.0

// gen-oid-tables renders the generated OID lookup tables (names_gen.go and
// mechs_gen.go) from the dotted-string forms of the well known OIDs.
package main

import (
	"encoding/asn1"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

type tableEntry struct {
	name    string
	oid     string
	altOids []string
}

// ORDER MATTERS - must be the same as the constants in names.go!
var nameTypeOids = []tableEntry{
	{"GSS_NT_HOSTBASED_SERVICE", "1.2.840.113554.1.2.1.4", []string{"1.3.6.1.5.6.2"}},
	{"GSS_NT_USER_NAME", "1.2.840.113554.1.2.1.1", []string{}},
	{"GSS_NT_MACHINE_UID_NAME", "1.2.840.113554.1.2.1.2", []string{}},
	{"GSS_NT_STRING_UID_NAME", "1.2.840.113554.1.2.1.3", []string{}},
	{"GSS_NT_ANONYMOUS", "1.3.6.1.5.6.3", []string{}},
	{"GSS_NO_OID", "", []string{}},
	{"GSS_NT_EXPORT_NAME", "1.3.6.1.5.6.4", []string{}},
	{"GSS_NO_NAME", "", []string{}},
	{"GSS_NT_COMPOSITE_EXPORT", "1.3.6.1.5.6.6", []string{}},
	{"GSS_KRB5_NT_PRINCIPAL_NAME", "1.2.840.113554.1.2.2.1", []string{"1.2.840.48018.1.2.2"}},
	{"GSS_KRB5_NT_ENTERPRISE_NAME", "1.2.840.113554.1.2.2.6", []string{}},
	{"GSS_KRB5_NT_X509_CERT", "1.2.840.113554.1.2.2.7", []string{}},
}

// ORDER MATTERS - must be the same as the constants in mechs.go!
var mechOids = []tableEntry{
	{"GSS_MECH_KRB5", "1.2.840.113554.1.2.2", []string{"1.3.6.1.5.2", "1.2.840.48018.1.2.2"}},
	{"GSS_MECH_IAKERB", "1.3.6.1.5.2.5", []string{}},
	{"GSS_MECH_SPNEGO", "1.3.6.1.5.5.2", []string{}},
	{"GSS_MECH_SPKM", "1.3.6.1.5.5.1.1", []string{}},
}

var codeTemplate = `// SPDX-License-Identifier: Apache-2.0

package gssname

// GENERATED CODE: DO NOT EDIT

var {{.Table}} = []struct {
	id        {{.IdType}}
	{{.NameField}}      string
	oidString string
	oid       Oid
	altOids   []Oid
}{

{{range .Entries}}
	// {{.Oid.S}}
	{ {{.Name}},
		"{{.Name}}",
		"{{.Oid.S}}",
		{{ $length := len .Oid.B }} {{- if gt $length 0}}[]byte{ {{bytesFormat .Oid.B}} } {{- else}}nil{{- end}},
		[]Oid{ {{- range .AltOids}}
		   { {{- bytesFormat .B}} }, // {{ .S }}
		 {{ end}} }},
{{end}}
}

`

type oid struct {
	S string
	B []byte
}

type tmplEntry struct {
	Name    string
	Oid     oid
	AltOids []oid
}

type tmplParam struct {
	Table     string
	IdType    string
	NameField string
	Entries   []tmplEntry
}

func main() {
	output := flag.String("o", "", "output file name")
	kind := flag.String("kind", "names", "table to generate: names or mechs")
	flag.Parse()

	var params tmplParam
	switch *kind {
	case "names":
		params = tmplParam{"nameTypes", "NameType", "name", makeEntries(nameTypeOids)}
	case "mechs":
		params = tmplParam{"mechs", "Mech", "mech", makeEntries(mechOids)}
	default:
		log.Fatalf("unknown table kind %q", *kind)
	}

	funcs := template.FuncMap{
		"bytesFormat": bytesFormat,
	}

	fh := os.Stdout
	var err error
	if *output != "" {
		fh, err = os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
	}
	defer func() {
		if *output != "" {
			_ = fh.Close()
		}
	}()

	var t = template.Must(template.New("code").Funcs(funcs).Parse(codeTemplate))

	if err := t.Execute(fh, params); err != nil {
		log.Fatal(err)
	}
}

func makeEntries(table []tableEntry) []tmplEntry {
	entries := make([]tmplEntry, len(table))

	// marshal the OIDs to DER encoding..
	for i, entry := range table {
		var enc []byte
		var err error
		if entry.oid != "" {
			objId := stringToOid(entry.oid)
			enc, err = asn1.Marshal(objId)

			if err != nil {
				panic(fmt.Errorf("parsing %s: %w", objId, err))
			}

			// strip the two byte ASN.1 header (tag and length)
			enc = enc[2:]
		}

		entries[i] = tmplEntry{
			Name: entry.name,
			Oid:  oid{S: entry.oid, B: enc},
		}

		for _, alt := range entry.altOids {
			objId := stringToOid(alt)
			enc, err := asn1.Marshal(objId)
			if err != nil {
				panic(fmt.Errorf("parsing %s: %w", objId, err))
			}

			entries[i].AltOids = append(entries[i].AltOids, oid{S: alt, B: enc[2:]})
		}
	}

	return entries
}

func bytesFormat(b []byte) string {
	strs := make([]string, len(b))
	for i, s := range b {
		strs[i] = fmt.Sprintf("0x%02x", s)
	}
	return strings.Join(strs, ", ")
}

func stringToOid(s string) asn1.ObjectIdentifier {
	// split string into components
	elms := strings.Split(s, ".")

	oid := make(asn1.ObjectIdentifier, len(elms))

	for i, elm := range elms {
		j, err := strconv.ParseUint(elm, 10, 32)
		if err != nil {
			panic(err)
		}

		oid[i] = int(j)
	}

	return oid
}
