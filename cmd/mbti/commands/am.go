package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/mbti/am"
	"github.com/teranos/mbti/display"
	"github.com/teranos/mbti/errors"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage mbti configuration",
	Long: `am - Manage mbti configuration ("I am")

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (MBTI_* prefix, e.g. MBTI_SERVER_PORT)
3. --config file
4. Project config (./am.toml, searched up directories)
5. User config (~/.mbti/am.toml)
6. System config (/etc/mbti/am.toml)
7. Default values

Examples:
  mbti am show                    # Show current configuration
  mbti am show --format json      # Show configuration in JSON format
  mbti am get server.port         # Get specific config value
  mbti am validate                # Validate current configuration
  mbti am init                    # Write defaults to ~/.mbti/am.toml`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the merged mbti configuration from all sources",
	Args:  cobra.NoArgs,
	RunE:  runAmShow,
}

var amGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a specific configuration value using dot notation (e.g., server.port, display.format)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAmGet,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate the merged configuration and lint each config file for unknown keys",
	Args:  cobra.NoArgs,
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Args:  cobra.NoArgs,
	RunE:  runAmWhere,
}

var amInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long:  "Write the built-in defaults as TOML to path (default ~/.mbti/am.toml)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmInit,
}

var (
	configFormat string
	initForce    bool
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file (previous versions are kept as .back1-3)")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amGetCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
	AmCmd.AddCommand(amInitCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := configFormat
	if !cmd.Flags().Changed("format") && display.ShouldOutputJSON(cmd, nil) {
		format = "json"
	}

	out, err := display.FormatConfig(cfg, format)
	if err != nil {
		return errors.WithHint(err, "use --format toml, json or yaml")
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runAmGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := am.GetViper()
	if !v.IsSet(key) {
		return errors.WithHint(errors.NewNotFoundError("configuration key %q not found", key),
			"run 'mbti am show' to list keys")
	}

	fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
	return nil
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	out := cmd.OutOrStdout()
	for _, path := range am.ConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		unknown, err := am.CheckUnknownKeys(path)
		if err != nil {
			return err
		}
		if len(unknown) > 0 {
			pterm.Warning.WithWriter(out).Printfln("%s: unknown keys ignored: %s", path, strings.Join(unknown, ", "))
		}
	}

	fmt.Fprintln(out, "✓ Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  [DEFAULT]  Built-in defaults")
	for _, path := range am.ConfigPaths() {
		status := "missing"
		if _, err := os.Stat(path); err == nil {
			status = "loaded"
		}
		fmt.Fprintf(out, "  [FILE]     %s (%s)\n", path, status)
	}
	fmt.Fprintf(out, "  [ENV]      %s_* environment variables\n", am.EnvPrefix)

	if active := am.ActiveConfigPath(); active != "" {
		fmt.Fprintf(out, "\nActive file: %s\n", active)
	}
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		userPath, err := am.UserConfigPath()
		if err != nil {
			return err
		}
		path = userPath
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
	}

	if err := am.WriteDefaultConfig(path); err != nil {
		return err
	}
	pterm.Success.WithWriter(cmd.OutOrStdout()).Println("Wrote " + path)
	return nil
}
