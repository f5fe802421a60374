package types

import "encoding/json"

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	// Input items; each is processed sequentially.
	Items []Item `json:"items"`
	// Optional node parameters. Fields present here override the server defaults.
	// example: {"model":"qwen2.5-7b-instruct","message":"Say hi in one word.","temperature":0.1,"max_tokens":50}
	Params json.RawMessage `json:"params,omitempty" swaggertype:"object"`
}

// ExecuteResponse is returned by POST /execute.
type ExecuteResponse struct {
	// Output items, one per input item.
	Items []Item `json:"items"`
}

// ModelsResponse wraps the options returned by GET /models.
type ModelsResponse struct {
	// Models usable in the model dropdown, sorted by name.
	Models []ModelOption `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: Invalid JSON Schema: unexpected end of JSON input
	Error string `json:"error" example:"Invalid JSON Schema: unexpected end of JSON input"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
	// Machine-readable error kind, when known.
	// example: invalid_schema
	Kind string `json:"kind,omitempty" example:"invalid_schema"`
	// Index of the input item that failed, for per-item errors.
	// example: 0
	ItemIndex *int `json:"item_index,omitempty" example:"0"`
}
