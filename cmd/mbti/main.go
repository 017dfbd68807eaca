package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/mbti/am"
	"github.com/teranos/mbti/cmd/mbti/commands"
	"github.com/teranos/mbti/display"
	"github.com/teranos/mbti/errors"
	"github.com/teranos/mbti/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mbti",
	Short: "mbti - Type codes and cognitive function stacks",
	Long: `mbti - Derive cognitive function stacks from four-letter type codes.

A type code picks one side of each dichotomy, in order:
  attitude     i (introversion) / e (extraversion)
  perceiving   n (intuition)    / s (sensing)
  judging      t (thinking)     / f (feeling)
  orientation  j (judging)      / p (perceiving)

Available commands:
  derive   - Derive the eight-slot stack for one or more codes
  list     - List all sixteen types
  describe - Expand a stack entry (ni, te, ...)
  serve    - Start the HTTP server
  mcp      - Serve tools over the Model Context Protocol (stdio)
  console  - Interactive prompt
  am       - Manage configuration ("I am")

Examples:
  mbti derive intp           # ni te fi se | ne ti fe si
  mbti derive esfp --json    # JSON output
  mbti list                  # All sixteen types
  mbti serve                 # HTTP on 127.0.0.1:8716`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		am.SetConfigFile(configPath)

		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		// am subcommands report invalid config themselves
		if cmd.Parent() == nil || cmd.Parent().Name() != "am" {
			if err := cfg.Validate(); err != nil {
				return errors.WithHint(err, "run 'mbti am validate' for details")
			}
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		display.SetColor(cfg.Display.Color && os.Getenv("NO_COLOR") == "")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file merged above the project am.toml")

	rootCmd.AddCommand(commands.DeriveCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.DescribeCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.MCPCmd)
	rootCmd.AddCommand(commands.ConsoleCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		if hint := errors.Hint(err); hint != "" {
			pterm.Info.WithWriter(os.Stderr).Println(hint)
		}
		os.Exit(1)
	}
}
