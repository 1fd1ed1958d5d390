// Package renderer renders a security's valuation snapshot to markdown.
package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// Report is the renderer-side view of one security's snapshot.
type Report struct {
	Code    string
	Name    string
	On      string // date of the reference close
	Price   float64
	Ratios  []Ratio  // derived ratios, in display order
	Figures []Figure // key fundamentals, in yen
}

// Ratio is one derived metric line. Value is nil when it was not computed.
type Ratio struct {
	Label string
	Value *float64
	Unit  string
}

// Figure is one monetary line, in yen.
type Figure struct {
	Label string
	Value *float64
}

const reportTemplate = `# {{.Name}} ({{.Code}})

Latest close: {{yen .Price}} on {{.On}}

## Valuation

| Metric | Value |
| --- | ---: |
{{range .Ratios}}| {{.Label}} | {{num .Value}}{{if .Value}} {{.Unit}}{{end}} |
{{end}}
## Fundamentals

| Item | Value |
| --- | ---: |
{{range .Figures}}| {{.Label}} | {{jpy .Value}} |
{{end}}`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"jpy": JPY,
	"num": Num,
	"yen": func(v float64) string { return JPY(&v) },
}).Parse(reportTemplate))

// Markdown renders the report to a markdown string.
func Markdown(r *Report) string {
	sb := &strings.Builder{}
	if err := reportTmpl.Execute(sb, r); err != nil {
		return fmt.Sprintf("error rendering report for %s: %v", r.Code, err)
	}
	return sb.String()
}
