package node

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"lmnode/internal/lmstudio"
)

// Metadata describes the completion that produced a response.
type Metadata struct {
	Model        string          `json:"model"`
	Usage        *lmstudio.Usage `json:"usage"`
	Created      int64           `json:"created"`
	ID           string          `json:"id"`
	FinishReason string          `json:"finish_reason"`
}

// Result is the output envelope of one successful item. Response is the raw
// content string, or the decoded JSON value when a schema was requested.
type Result struct {
	Response any      `json:"response"`
	Metadata Metadata `json:"_metadata"`
}

// JSON renders the result as an item payload.
func (r Result) JSON() map[string]any {
	return map[string]any{
		"response":  r.Response,
		"_metadata": r.Metadata,
	}
}

// MapResponse validates the completion shape and extracts the content.
// With a non-nil schema the content must be JSON; validate additionally
// checks it against the schema.
func MapResponse(resp *lmstudio.ChatResponse, schema map[string]any, validate bool) (Result, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return Result{}, ErrInvalidResponseStructure("missing choices")
	}
	choice := resp.Choices[0]
	if choice.Message == nil {
		return Result{}, ErrInvalidResponseStructure("missing choices[0].message")
	}
	content := choice.Message.Content
	if content == "" {
		return Result{}, ErrNoContent()
	}

	out := Result{
		Response: content,
		Metadata: Metadata{
			Model:        resp.Model,
			Usage:        resp.Usage,
			Created:      resp.Created,
			ID:           resp.ID,
			FinishReason: choice.FinishReason,
		},
	}
	if schema == nil {
		return out, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return Result{}, ErrContentParseFailed(err, content)
	}
	if validate {
		if err := validateAgainst(schema, parsed); err != nil {
			return Result{}, ErrContentParseFailed(err, content)
		}
	}
	out.Response = parsed
	return out, nil
}

// validateAgainst checks instance against a schema given as a decoded JSON object.
func validateAgainst(schema map[string]any, instance any) error {
	b, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decode schema: %w", err)
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve schema: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
