package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lmnode/internal/common/fsutil"
	"lmnode/internal/node"
)

// paramFlags are the node parameters settable from the command line. Only
// flags the user changed override the configured defaults.
type paramFlags struct {
	model          string
	message        string
	schema         string
	schemaFile     string
	temperature    float64
	maxTokens      int
	timeout        int
	validate       bool
	continueOnFail bool
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.model, "model", "", "Model id; may use {{.field}} templates over the item")
	fs.StringVar(&f.message, "message", "", "User message; may use {{.field}} templates over the item")
	fs.StringVar(&f.schema, "schema", "", "JSON Schema text requesting structured output")
	fs.StringVar(&f.schemaFile, "schema-file", "", "Read the JSON Schema from a file")
	fs.Float64Var(&f.temperature, "temperature", node.DefaultTemperature, "Sampling temperature (0.0-2.0)")
	fs.IntVar(&f.maxTokens, "max-tokens", 0, "Maximum tokens to generate (0 = server default)")
	fs.IntVar(&f.timeout, "timeout", 0, "Per-request timeout in seconds (0 = none)")
	fs.BoolVar(&f.validate, "validate", false, "Validate structured output against the schema")
	fs.BoolVar(&f.continueOnFail, "continue-on-fail", false, "Turn item failures into items with an error field")
	cmd.MarkFlagsMutuallyExclusive("schema", "schema-file")
}

func (f *paramFlags) apply(cmd *cobra.Command, p node.Params) (node.Params, error) {
	fs := cmd.Flags()
	if fs.Changed("model") {
		p.Model = f.model
	}
	if fs.Changed("message") {
		p.Message = f.message
	}
	if fs.Changed("schema") {
		p.JSONSchema = f.schema
	}
	if fs.Changed("schema-file") {
		path, err := fsutil.ExpandHome(f.schemaFile)
		if err != nil {
			return p, err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return p, fmt.Errorf("schema file: %w", err)
		}
		p.JSONSchema = string(b)
	}
	if fs.Changed("temperature") {
		p.Temperature = f.temperature
	}
	if fs.Changed("max-tokens") {
		p.MaxTokens = f.maxTokens
	}
	if fs.Changed("timeout") {
		p.TimeoutSeconds = f.timeout
	}
	if fs.Changed("validate") {
		p.ValidateResponse = f.validate
	}
	if fs.Changed("continue-on-fail") {
		p.ContinueOnFail = f.continueOnFail
	}
	return p, nil
}
