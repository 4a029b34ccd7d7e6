package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptRender(t *testing.T) {
	p := Prompt{
		Task:        "Do the thing",
		Data:        `{"a": 1}`,
		Context:     "extra framing",
		Schema:      `{"b": string}`,
		Constraints: []string{"rule one", "rule two"},
	}

	out := p.Render()

	assert.Contains(t, out, "Task: Do the thing")
	assert.Contains(t, out, "Data:\n{\"a\": 1}")
	assert.Contains(t, out, "Context: extra framing")
	assert.Contains(t, out, "Respond with a single JSON object exactly matching this schema:")
	assert.Contains(t, out, "- rule one")

	// Sections render in fixed order: task before data before schema.
	assert.Less(t, strings.Index(out, "Task:"), strings.Index(out, "Data:"))
	assert.Less(t, strings.Index(out, "Data:"), strings.Index(out, "schema"))
}

func TestPromptRenderSkipsEmptySections(t *testing.T) {
	p := Prompt{Task: "t", Data: "d", Schema: "s"}
	out := p.Render()

	assert.NotContains(t, out, "Context:")
	assert.NotContains(t, out, "Constraints:")
}

func TestIndentJSONPreservesContent(t *testing.T) {
	raw := json.RawMessage(`{"z":1,"a":{"nested":true},"extra":"kept"}`)
	out := indentJSON(raw)

	// Indentation only: field order and every field survive.
	assert.Less(t, strings.Index(out, `"z"`), strings.Index(out, `"a"`))
	assert.Contains(t, out, `"extra"`)

	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &roundTrip))
	assert.Equal(t, "kept", roundTrip["extra"])
}

func TestIndentJSONFallsBackOnInvalidInput(t *testing.T) {
	assert.Equal(t, "not json", indentJSON(json.RawMessage("not json")))
}
