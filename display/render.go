package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/mbti/mbti"
)

// SetColor toggles pterm styling globally (display.color).
func SetColor(enabled bool) {
	if enabled {
		pterm.EnableStyling()
		return
	}
	pterm.DisableStyling()
}

// RenderResult writes a derived type as a heading plus a table of the eight
// stack positions.
func RenderResult(w io.Writer, res mbti.Result) error {
	a := res.Attributes
	fmt.Fprintf(w, "%s  %s\n", pterm.Bold.Sprint(res.Upper()),
		strings.Join([]string{a.Attitude, a.Perceiving, a.Judging, a.Orientation}, " · "))

	data := pterm.TableData{{"#", "Role", "Function", "Name"}}
	for _, p := range res.Positions() {
		data = append(data, []string{fmt.Sprint(p.Rank), p.Role, p.Entry, p.Function})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render stack table: %w", err)
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

// RenderList writes one row per type: code, dominant, auxiliary, full stack.
func RenderList(w io.Writer, results []mbti.Result) error {
	data := pterm.TableData{{"Type", "Dominant", "Auxiliary", "Stack", "Shadow"}}
	for _, res := range results {
		data = append(data, []string{
			res.Upper(),
			res.Stack[0],
			res.Stack[1],
			strings.Join(res.Stack.Primary(), " "),
			strings.Join(res.Stack.Shadow(), " "),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render type list: %w", err)
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
