package emit

import (
	"strings"
	"text/template"

	"gc-derive/internal/derive"
	"gc-derive/internal/descriptor"
)

var funcs = template.FuncMap{
	"generics": renderGenerics,
	"ref":      func(t derive.TypeRef) string { return t.String() },
	"pred":     func(p descriptor.Predicate) string { return p.String() },
	"pattern":  renderPattern,
	"phantom":  renderPhantom,
}

var itemTemplates = template.Must(template.New("items").Funcs(funcs).Parse(`
{{- define "impl" -}}
{{if .Safety}}// SAFETY: {{.Safety}}
{{end -}}
{{range .Attrs}}#[{{.}}]
{{end -}}
{{if .Unsafe}}unsafe {{end}}impl{{generics .Generics}} {{ref .Trait}} for {{ref .Self}}
{{- if .Where}}
where
{{range .Where}}    {{pred .}},
{{end}}{{else}} {{end}}{
{{range .Assoc}}    type {{.Name}} = {{ref .Type}};
{{end}}{{with .Trace}}{{template "trace" .}}{{end}}}
{{end -}}

{{- define "trace" -}}
{{range .Attrs}}{{"    "}}#[{{.}}]
{{end -}}
{{"    "}}unsafe fn trace(&self, {{.Visitor}}: {{.VisitorType}}) {
{{if .Arms}}        match *self {
{{range .Arms}}            {{pattern .Pattern}} => {{if .Visits}}{
{{range .Visits}}                {{.}}.trace({{$.Visitor}});
{{end}}            }{{else}}{}{{end}}
{{end}}        }
{{else}}        match *self {}
{{end}}    }
{{end -}}

{{- define "marker" -}}
{{if .Doc}}/// {{.Doc}}
{{end -}}
{{if .Visibility}}{{.Visibility}} {{end}}struct {{ref .Ref}}{{phantom .}};
{{end -}}
`))

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by gc-derive. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}
{{range .Blocks}}
{{.}}{{end}}`))

func renderGenerics(g derive.Generics) string {
	if g.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, len(g.Scopes)+len(g.Types))
	for _, s := range g.Scopes {
		parts = append(parts, "'"+s)
	}

	for _, p := range g.Types {
		parts = append(parts, p.String())
	}

	return "<" + strings.Join(parts, ", ") + ">"
}

func renderPattern(p derive.Pattern) string {
	refs := make([]string, 0, len(p.Bindings))

	switch p.Style {
	case descriptor.StyleNamed:
		for _, b := range p.Bindings {
			if b.Var == b.Field {
				refs = append(refs, "ref "+b.Var)
			} else {
				refs = append(refs, b.Field+": ref "+b.Var)
			}
		}

		if len(refs) == 0 {
			return p.Path + " {}"
		}

		return p.Path + " { " + strings.Join(refs, ", ") + " }"

	case descriptor.StyleTuple:
		for _, b := range p.Bindings {
			refs = append(refs, "ref "+b.Var)
		}

		return p.Path + "(" + strings.Join(refs, ", ") + ")"

	default:
		return p.Path
	}
}

// renderPhantom renders the zero-size body that keeps the marker's
// parameters used. Markers without parameters are unit structs.
func renderPhantom(m *derive.Marker) string {
	parts := make([]string, 0, len(m.Scopes)+len(m.Types))
	for _, s := range m.Scopes {
		parts = append(parts, "&'"+s+" ()")
	}

	parts = append(parts, m.Types...)

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return "(::core::marker::PhantomData<" + parts[0] + ">)"
	default:
		return "(::core::marker::PhantomData<(" + strings.Join(parts, ", ") + ")>)"
	}
}
