package node

import (
	"fmt"
	"math"
)

// Defaults applied when the corresponding Params fields are unset.
const (
	DefaultTemperature = 0.7
	MinTemperature     = 0.0
	MaxTemperature     = 2.0
)

// Params are the node's user-facing parameters.
//
// Model and Message may contain text/template actions evaluated against each
// input item's JSON, e.g. "Summarize: {{.text}}".
type Params struct {
	Model   string `json:"model" yaml:"model" toml:"model"`
	Message string `json:"message" yaml:"message" toml:"message"`
	// JSONSchema is optional schema text; a non-empty object enables structured output.
	JSONSchema  string  `json:"json_schema" yaml:"json_schema" toml:"json_schema"`
	Temperature float64 `json:"temperature" yaml:"temperature" toml:"temperature"`
	// MaxTokens of 0 leaves the limit to the server.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`
	// TimeoutSeconds of 0 means no per-request timeout.
	TimeoutSeconds int  `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
	ContinueOnFail bool `json:"continue_on_fail" yaml:"continue_on_fail" toml:"continue_on_fail"`
	// ValidateResponse checks structured content against JSONSchema after parsing.
	ValidateResponse bool `json:"validate_response" yaml:"validate_response" toml:"validate_response"`
}

// DefaultParams returns the parameter defaults shown in a fresh node.
func DefaultParams() Params {
	return Params{Temperature: DefaultTemperature}
}

// Validate checks static parameter ranges. Per-item values (templates,
// schema text) are checked while executing.
func (p Params) Validate() error {
	if math.IsNaN(p.Temperature) || p.Temperature < MinTemperature || p.Temperature > MaxTemperature {
		return ErrInvalidParameter("temperature", fmt.Errorf("must be between %.1f and %.1f, got %v", MinTemperature, MaxTemperature, p.Temperature))
	}
	if p.MaxTokens < 0 {
		return ErrInvalidParameter("max_tokens", fmt.Errorf("must be positive, got %d", p.MaxTokens))
	}
	if p.TimeoutSeconds < 0 {
		return ErrInvalidParameter("timeout_seconds", fmt.Errorf("must not be negative, got %d", p.TimeoutSeconds))
	}
	return nil
}
