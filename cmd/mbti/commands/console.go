package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/mbti/console"
	"github.com/teranos/mbti/logger"
)

// ConsoleCmd starts the interactive prompt
var ConsoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"repl"},
	Short:   "Interactive prompt for deriving types",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Console.Prompt, logger.Named("console"))
		return c.Run(cmd.Context())
	},
}
