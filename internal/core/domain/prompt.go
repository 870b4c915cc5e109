package domain

import "strings"

const (
	promptPreamble = "You are StudyPDF. "
	excerptNote    = "\n[Note: Excerpt from larger document]"
)

// Prompt is a fully assembled model prompt. Render produces the exact
// string sent to the provider; callers never concatenate around it.
type Prompt struct {
	Instruction string `json:"instruction"`
	Context     string `json:"context"`
	Query       string `json:"query"`
	Excerpt     bool   `json:"excerpt,omitempty"`
}

func (p Prompt) Render() string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString(p.Instruction)
	b.WriteString("\n\nContext: ")
	b.WriteString(p.Context)
	if p.Excerpt {
		b.WriteString(excerptNote)
	}
	b.WriteString("\n\nQuestion: ")
	b.WriteString(p.Query)
	b.WriteString("\n\nAnswer:")
	return b.String()
}
