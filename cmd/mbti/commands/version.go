package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/mbti/display"
	"github.com/teranos/mbti/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show mbti version information",
	Long:  `Display version, build time, commit hash, and platform information for the mbti binary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		if display.ShouldOutputJSON(cmd, nil) {
			return display.OutputJSON(cmd.OutOrStdout(), info)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, info.String())
		fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
		if !info.IsRelease() {
			fmt.Fprintln(out, "Build: development")
		}
		return nil
	},
}
