package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lmnode/pkg/types"
)

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "models",
		Short:   "List chat-capable LM Studio models",
		Example: "  lmnode models --host http://192.168.1.20:1234",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.newNode().ModelOptions(cmd.Context())
			return printJSON(cmd.OutOrStdout(), types.ModelsResponse{Models: opts})
		},
	}
}

func newChatCmd(a *app) *cobra.Command {
	var pf paramFlags
	var itemJSON string
	cmd := &cobra.Command{
		Use:     "chat",
		Short:   "Send one chat completion and print the output item",
		Example: "  lmnode chat --model qwen2.5-7b-instruct --message 'Say hi in one word.' --temperature 0.1 --max-tokens 50",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.apply(cmd, a.cfg.Node)
			if err != nil {
				return err
			}
			item := types.Item{JSON: map[string]any{}}
			if itemJSON != "" {
				if err := json.Unmarshal([]byte(itemJSON), &item.JSON); err != nil {
					return fmt.Errorf("--item must be a JSON object: %w", err)
				}
			}
			out, err := a.newNode().Execute(cmd.Context(), []types.Item{item}, p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out[0])
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&itemJSON, "item", "", "JSON object used as the item for templates")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var pf paramFlags
	var input string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the node over items read as a JSON array or NDJSON",
		Example: "  lmnode run --input items.ndjson --model llama-3.2-3b --message 'Summarize: {{.text}}'\n" +
			"  cat items.json | lmnode run --continue-on-fail",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.apply(cmd, a.cfg.Node)
			if err != nil {
				return err
			}
			r, closeInput, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer closeInput()
			items, err := readItems(r)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				items = []types.Item{{JSON: map[string]any{}}}
			}
			a.logger.Info().Int("items", len(items)).Str("model", p.Model).Msg("run start")
			out, err := a.newNode().Execute(cmd.Context(), items, p)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Items file, or - for stdin")
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
