package types

// Item is one workflow record flowing into or out of the node.
type Item struct {
	// Arbitrary JSON payload. On output it holds either the response envelope
	// ({"response": ..., "_metadata": {...}}) or {"error": "..."}.
	// example: {"text":"Summarize this paragraph."}
	JSON map[string]any `json:"json" swaggertype:"object"`
	// Index of the input item this output was produced from.
	// example: 0
	PairedItem int `json:"pairedItem" example:"0"`
}

// ModelOption is a selectable entry in the model dropdown.
type ModelOption struct {
	// Display name; loaded models carry a " (loaded)" suffix.
	// example: qwen2.5-7b-instruct (loaded)
	Name string `json:"name" example:"qwen2.5-7b-instruct (loaded)"`
	// Model id sent to LM Studio. Empty for the "no models" sentinel.
	// example: qwen2.5-7b-instruct
	Value string `json:"value" example:"qwen2.5-7b-instruct"`
	// Optional description, e.g. the quantization label.
	// example: Quantization: Q4_K_M
	Description string `json:"description,omitempty" example:"Quantization: Q4_K_M"`
}
