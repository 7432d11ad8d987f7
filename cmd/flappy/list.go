package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available variants",
	Long:  `Shows every variant grouped by game, with the names 'play' and 'window' accept.`,
	Run: func(cmd *cobra.Command, _ []string) {
		printVariants(os.Stdout, registry.List())
	},
}

var familyStyle = lipgloss.NewStyle().Bold(true)

// printVariants writes one table per family. Variants arrive sorted by
// family, so a family change starts a new table.
func printVariants(w io.Writer, variants []registry.GameInfo) {
	if len(variants) == 0 {
		fmt.Fprintln(w, "No variants registered.")
		return
	}

	var t *table.Table
	flush := func() {
		if t != nil {
			fmt.Fprintln(w, t.Render())
		}
	}

	family := ""
	for _, v := range variants {
		if t == nil || v.Family != family {
			flush()
			family = v.Family
			fmt.Fprintln(w, familyStyle.Render(family))
			t = table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("NAME", "ID", "TITLE")
		}
		name := v.Alias
		if name == "" {
			name = "-"
		}
		t.Row(name, v.ID, v.Title)
	}
	flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Play one with 'flappy play <name>' or 'flappy window <name>'.")
}
