package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/mbti/am"
	"github.com/teranos/mbti/display"
	"github.com/teranos/mbti/errors"
	"github.com/teranos/mbti/logger"
	"github.com/teranos/mbti/mbti"
)

const codeHint = "type codes are four letters: i/e, n/s, t/f, j/p (e.g. intp)"

// DeriveCmd derives the function stack for one or more type codes
var DeriveCmd = &cobra.Command{
	Use:     "derive <code>...",
	Aliases: []string{"type"},
	Short:   "Derive the cognitive function stack for type codes",
	Long: `Derive the eight-slot cognitive function stack for each type code.

Codes are case-insensitive and surrounding whitespace is ignored.

Examples:
  mbti derive intp
  mbti derive INTJ esfp --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDerive,
}

// ListCmd lists all sixteen types
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sixteen types with their stacks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// DescribeCmd expands stack entries into function names
var DescribeCmd = &cobra.Command{
	Use:   "describe <entry>...",
	Short: "Expand a stack entry such as ni into its full name",
	Long: `Expand two-letter stack entries: a function (n, s, t, f) followed by an
attitude (i, e).

Examples:
  mbti describe ni        # introverted intuition
  mbti describe te fi`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func loadConfig() (*am.Config, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}

func runDerive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results := make([]mbti.Result, 0, len(args))
	for _, code := range args {
		res, err := mbti.Derive(code)
		if err != nil {
			return errors.WithHint(err, codeHint)
		}
		logger.Debugw("Derived type", logger.FieldCode, res.Code, logger.FieldDominant, res.Stack.Dominant())
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if display.ShouldOutputJSON(cmd, cfg) {
		if len(results) == 1 {
			return display.OutputJSON(out, results[0])
		}
		return display.OutputJSON(out, results)
	}

	for _, res := range results {
		if err := display.RenderResult(out, res); err != nil {
			return err
		}
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	codes := mbti.AllCodes()
	results := make([]mbti.Result, 0, len(codes))
	for _, code := range codes {
		results = append(results, mbti.MustDerive(code))
	}

	if display.ShouldOutputJSON(cmd, cfg) {
		return display.OutputJSON(cmd.OutOrStdout(), results)
	}
	return display.RenderList(cmd.OutOrStdout(), results)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names := make(map[string]string, len(args))
	for _, entry := range args {
		name, err := mbti.DescribeFunction(entry)
		if err != nil {
			return errors.WithHint(err, "entries are a function (n, s, t, f) followed by an attitude (i, e)")
		}
		names[mbti.Normalize(entry)] = name
	}

	if display.ShouldOutputJSON(cmd, cfg) {
		return display.OutputJSON(cmd.OutOrStdout(), names)
	}
	for _, entry := range args {
		key := mbti.Normalize(entry)
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", key, names[key])
	}
	return nil
}
