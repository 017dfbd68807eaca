package display

import (
	"github.com/spf13/cobra"

	"github.com/teranos/mbti/am"
)

// ShouldOutputJSON determines if a command should output JSON. An explicit
// --json flag wins; otherwise display.format from config decides.
func ShouldOutputJSON(cmd *cobra.Command, cfg *am.Config) bool {
	if cmd != nil {
		if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
			jsonFlag, _ := cmd.Flags().GetBool("json")
			return jsonFlag
		}
		if f := cmd.Root().PersistentFlags().Lookup("json"); f != nil && f.Changed {
			jsonFlag, _ := cmd.Root().PersistentFlags().GetBool("json")
			return jsonFlag
		}
	}
	return cfg != nil && cfg.WantsJSON()
}
