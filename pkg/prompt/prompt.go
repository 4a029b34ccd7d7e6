package prompt

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Prompt is the canonical structure every feature template fills in.
// Rendering order is fixed so prompts stay deterministic across calls.
type Prompt struct {
	Task        string   // what the model should do
	Data        string   // the full request payload, serialized
	Context     string   // optional feature-specific framing
	Schema      string   // the exact JSON shape expected back
	Constraints []string // rules the reply must follow
}

// Render converts the structured prompt to the user instruction string
func (p *Prompt) Render() string {
	var sections []string

	if p.Task != "" {
		sections = append(sections, "Task: "+p.Task)
	}
	if p.Data != "" {
		sections = append(sections, "Data:\n"+p.Data)
	}
	if p.Context != "" {
		sections = append(sections, "Context: "+p.Context)
	}
	if p.Schema != "" {
		sections = append(sections, "Respond with a single JSON object exactly matching this schema:\n"+p.Schema)
	}
	if len(p.Constraints) > 0 {
		con := "Constraints:\n"
		for _, c := range p.Constraints {
			con += "- " + c + "\n"
		}
		sections = append(sections, strings.TrimSpace(con))
	}

	return strings.Join(sections, "\n\n")
}

// indentJSON re-indents a JSON document without re-marshaling it, so field
// order and every field of the caller's payload survive into the prompt.
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// baseConstraints apply to every feature
var baseConstraints = []string{
	"Return only the JSON object, no surrounding prose or markdown",
	"Every field in the schema is required unless marked optional",
	"Do not invent data that is not supported by the input",
}
