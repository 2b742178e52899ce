// Package report renders risk results as plain-text compatibility reports.
package report

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/furfindr/internal/domain"
)

const ruleWidth = 70

const reportTemplate = `{{rule}}
ADOPTION COMPATIBILITY REPORT: {{.Result.PetName}}
{{rule}}

Breed: {{.Result.PetBreed}}
Risk Level: {{.Result.RiskLevel}} (Score: {{.DisplayScore}}/{{.Cap}})

{{.Result.Summary}}
{{if .Result.TriggeredRules}}
{{.Result.TotalRulesTriggered}} Concern(s) Identified:
{{range $i, $r := .Result.TriggeredRules}}
{{inc $i}}. {{$r.RuleName}} [{{$r.Weight}} points]
   Why this matters: {{$r.Concern}}
   What to do:
{{- range $r.Guidance}}
      • {{.}}
{{- end}}
{{end}}
{{else}}
No major compatibility concerns identified!
This pet appears well-suited to your household situation.
{{end}}{{rule}}
`

// Renderer renders reports from a parsed template.
type Renderer struct {
	tmpl *template.Template
	cap  int
}

// New creates a Renderer that shows scores out of displayCap.
func New(displayCap int) (*Renderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"rule": func() string { return strings.Repeat("=", ruleWidth) },
		"inc":  func(i int) int { return i + 1 },
	}).Parse(reportTemplate)
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl, cap: displayCap}, nil
}

type reportData struct {
	Result       domain.RiskResult
	DisplayScore int
	Cap          int
}

// Write renders one result to w.
func (r *Renderer) Write(w io.Writer, result domain.RiskResult) error {
	return r.tmpl.Execute(w, reportData{
		Result:       result,
		DisplayScore: result.DisplayScore(r.cap),
		Cap:          r.cap,
	})
}

// Render returns the report for one result as a string.
func (r *Renderer) Render(result domain.RiskResult) (string, error) {
	var buf bytes.Buffer
	if err := r.Write(&buf, result); err != nil {
		return "", err
	}
	return buf.String(), nil
}
