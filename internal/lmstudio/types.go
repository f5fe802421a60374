package lmstudio

// Credentials identify the LM Studio server to talk to.
type Credentials struct {
	// Host is a base URL or bare host[:port]; a missing scheme means http.
	Host   string
	APIKey string
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// JSONSchemaFormat carries a JSON Schema for structured output.
type JSONSchemaFormat struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// ResponseFormat is the OpenAI-compatible response_format field.
type ResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *JSONSchemaFormat `json:"json_schema,omitempty"`
}

// ChatRequest is the payload for POST /v1/chat/completions.
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// Usage contains token accounting.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Choice is one completion alternative. Message is nil when the server omitted it.
type Choice struct {
	Index        int      `json:"index"`
	Message      *Message `json:"message"`
	FinishReason string   `json:"finish_reason"`
}

// ChatResponse is the body returned by POST /v1/chat/completions.
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage"`
}

// ModelInfo is one entry of GET /api/v0/models.
type ModelInfo struct {
	ID                string `json:"id"`
	Object            string `json:"object,omitempty"`
	Type              string `json:"type"`
	Publisher         string `json:"publisher,omitempty"`
	Arch              string `json:"arch,omitempty"`
	CompatibilityType string `json:"compatibility_type,omitempty"`
	Quantization      string `json:"quantization,omitempty"`
	State             string `json:"state"`
	MaxContextLength  int    `json:"max_context_length,omitempty"`
}

// Model types and states reported by LM Studio.
const (
	ModelTypeLLM = "llm"
	ModelTypeVLM = "vlm"

	StateLoaded    = "loaded"
	StateNotLoaded = "not-loaded"
)

// Loaded reports whether the model is currently resident in LM Studio.
func (m ModelInfo) Loaded() bool { return m.State == StateLoaded }

// ModelsResponse wraps the list returned by GET /api/v0/models.
type ModelsResponse struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}
