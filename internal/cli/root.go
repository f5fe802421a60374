// Package cli implements the lmnode command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lmnode/internal/config"
	"lmnode/internal/lmstudio"
	"lmnode/internal/logging"
	"lmnode/internal/node"
)

// app carries state resolved once per invocation.
type app struct {
	cfg       config.Config
	logger    zerolog.Logger
	logCloser io.Closer

	configPath string
	host       string
	apiKey     string
	logLevel   string
	logFile    string
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

// resolve loads configuration, overlays changed persistent flags and builds
// the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = a.host
	}
	if flags.Changed("api-key") {
		cfg.APIKey = a.apiKey
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	a.cfg, a.logger, a.logCloser = cfg, logger, closer
	return nil
}

func (a *app) newNode() *node.Node {
	client := lmstudio.NewClient(a.cfg.Credentials())
	a.logger.Debug().Str("base_url", client.BaseURL()).Msg("lm studio client ready")
	return node.New(client, node.WithLogger(a.logger))
}

// NewRootCmd returns the lmnode command tree.
func NewRootCmd() *cobra.Command { return buildRootCmdWith(&app{}) }

func buildRootCmdWith(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lmnode",
		Short:         "Chat with LM Studio models over batches of items",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (.yaml|.yml|.json|.toml); defaults to $"+config.EnvConfig+" or ./lmnode.*")
	pf.StringVar(&a.host, "host", "", "LM Studio host or base URL (default "+lmstudio.DefaultHost+")")
	pf.StringVar(&a.apiKey, "api-key", "", "Bearer token sent to LM Studio")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error|off")
	pf.StringVar(&a.logFile, "log-file", "", "Write logs to a rotated file instead of stderr")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || (cmd.HasParent() && cmd.Parent().Name() == "completion") {
			return nil
		}
		return a.resolve(cmd)
	}

	root.AddCommand(newModelsCmd(a), newChatCmd(a), newRunCmd(a), newServeCmd(a))

	// completion command
	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(cmd.OutOrStdout()) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(cmd.OutOrStdout(), true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error {
		return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	}})
	root.AddCommand(completionCmd)

	return root
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	a := &app{}
	defer a.close()
	root := buildRootCmdWith(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/lmnode.
func Main() int { return MainWithArgs(os.Args[1:]) }
