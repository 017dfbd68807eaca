package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/mbti/logger"
	"github.com/teranos/mbti/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(w io.Writer, addr string, verbosity int, configPath string) {
	versionInfo := version.Get()
	border := pterm.NewStyle(pterm.FgGreen, pterm.Bold)

	fmt.Fprintln(w)
	fmt.Fprintln(w, border.Sprint("┌─ mbti server ───────────────────────────────────────┐"))
	fmt.Fprintf(w, "%s Listening: http://%s\n", border.Sprint("│"), addr)
	fmt.Fprintf(w, "%s Version:   %s (commit %s)\n", border.Sprint("│"), versionInfo.Version, versionInfo.Short())
	fmt.Fprintf(w, "%s Verbosity: %s\n", border.Sprint("│"), logger.LevelName(verbosity))
	if configPath != "" {
		fmt.Fprintf(w, "%s Config:    %s (watched)\n", border.Sprint("│"), configPath)
	}
	fmt.Fprintln(w, border.Sprint("└─────────────────────────────────────────────────────┘"))
	fmt.Fprintln(w, pterm.FgCyan.Sprint("Try: curl http://"+addr+"/type?code=intp"))
	fmt.Fprintln(w, pterm.FgBlue.Sprint("Press Ctrl+C to stop"))
	fmt.Fprintln(w)
}
