// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"strings"
	"text/template"

	"github.com/meshintel/will-engine/pkg/types"
)

// clausePromptTmpl assembles the full drafting prompt for one generated
// section: the section intent, the facts the clause may use, and the
// retrieved legal source passages, each tagged with its fragment ID.
var clausePromptTmpl = template.Must(template.New("clause").Parse(`{{.Intent}}

Facts (use only these):
{{- range .Facts}}
- {{.}}
{{- end}}

Legal source passages:
{{- range .Fragments}}
[{{.Fragment.ID}}]
{{.Fragment.Text}}
{{- end}}

Draft the clause in formal Malaysian testamentary language. Identify every
person by full name and NRIC number. Output the clause text only.`))

type promptData struct {
	Intent    string
	Facts     []string
	Fragments []types.ScoredFragment
}

func buildPrompt(plan sectionPlan, retrieved *types.RetrievalResult) (string, error) {
	var b strings.Builder
	err := clausePromptTmpl.Execute(&b, promptData{
		Intent:    plan.intent,
		Facts:     plan.facts,
		Fragments: retrieved.Fragments,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
