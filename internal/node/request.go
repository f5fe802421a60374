package node

import (
	"encoding/json"
	"errors"
	"strings"

	"lmnode/internal/lmstudio"
)

// schemaName is the json_schema.name sent with structured output requests.
const schemaName = "response_schema"

// ParseSchema turns schema text into a JSON object. Blank text and "{}"
// return a nil schema, meaning plain text output.
func ParseSchema(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, ErrInvalidSchema(err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrInvalidSchema(errors.New("schema must be a JSON object"))
	}
	if len(obj) == 0 {
		return nil, nil
	}
	return obj, nil
}

// BuildChatRequest assembles the chat completion payload for one item.
// It fails with an InvalidSchema error before anything is sent.
func BuildChatRequest(model, message string, p Params) (lmstudio.ChatRequest, error) {
	req := lmstudio.ChatRequest{
		Model:       model,
		Messages:    []lmstudio.Message{{Role: "user", Content: message}},
		Temperature: p.Temperature,
	}
	if p.MaxTokens > 0 {
		req.MaxTokens = p.MaxTokens
	}
	schema, err := ParseSchema(p.JSONSchema)
	if err != nil {
		return lmstudio.ChatRequest{}, err
	}
	if schema != nil {
		req.ResponseFormat = &lmstudio.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &lmstudio.JSONSchemaFormat{
				Name:   schemaName,
				Strict: true,
				Schema: schema,
			},
		}
	}
	return req, nil
}

// requestedSchema returns the schema attached to req, or nil.
func requestedSchema(req lmstudio.ChatRequest) map[string]any {
	if req.ResponseFormat == nil || req.ResponseFormat.JSONSchema == nil {
		return nil
	}
	return req.ResponseFormat.JSONSchema.Schema
}
