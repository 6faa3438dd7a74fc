package ai

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Models often wrap JSON in Markdown code fences despite being told not to.
// Fence markers (optionally tagged with a language hint) are removed wherever
// they appear; this is a best-effort strip, not a Markdown parser.
var fenceMarker = regexp.MustCompile("```[a-zA-Z]*\n?")

func stripCodeFences(s string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(s, ""))
}

// decodeModelJSON strips code fences from raw model output, parses it as
// JSON, checks it against the capability's schema and decodes it into v.
// Every failure mode surfaces as a *ResponseParseError carrying the raw
// text. There is no retry here; a non-conforming response fails outward
// immediately.
func decodeModelJSON(raw string, schema *jsonschema.Schema, v any) error {
	cleaned := stripCodeFences(raw)

	var generic any
	if err := json.Unmarshal([]byte(cleaned), &generic); err != nil {
		return &ResponseParseError{Raw: raw, Err: err}
	}

	if err := schema.Validate(generic); err != nil {
		return &ResponseParseError{Raw: raw, Err: err}
	}

	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &ResponseParseError{Raw: raw, Err: err}
	}
	return nil
}
