package requirements

import (
	"strings"
)

// urlBraceRestorer undoes percent-encoding of `{` and `}` in source URLs
// so placeholders like file:///${PROJECT_ROOT}/pkg survive canonical
// formatting and can be template-expanded later.
var urlBraceRestorer = strings.NewReplacer("%7B", "{", "%7D", "}")

// Requirement is a structured dependency specifier: a distribution name
// with optional extras, either version specifiers or a direct source URL,
// and an optional environment marker.
type Requirement struct {
	Name       string
	Extras     []string
	Specifiers []string
	URL        string
	Marker     string
}

// String renders the requirement to canonical text:
//
//	name[extra1,extra2]>=1.0.0, <2.0.0 ; python_version < '3.8'
//	name @ https://example.invalid/pkg.tar.gz
//
// Version specifiers are joined with ", ". A URL takes the place of the
// specifiers and keeps literal `{`/`}` characters for later template
// re-expansion rather than their percent-encoded forms.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)

	if len(r.Extras) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(r.Extras, ","))
		b.WriteString("]")
	}

	switch {
	case r.URL != "":
		b.WriteString(" @ ")
		b.WriteString(urlBraceRestorer.Replace(r.URL))
	case len(r.Specifiers) > 0:
		b.WriteString(strings.Join(r.Specifiers, ", "))
	}

	if r.Marker != "" {
		b.WriteString(" ; ")
		b.WriteString(r.Marker)
	}

	return b.String()
}
