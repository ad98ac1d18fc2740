package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/omnote/omnote/internal/darkmode"
	"github.com/omnote/omnote/internal/palette"
	"github.com/omnote/omnote/internal/source"
	"github.com/omnote/omnote/internal/theme"
)

var themeOpts struct {
	css bool
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the resolved terminal palette",
	Long: `Resolve the color palette without starting the GUI and print it.

Each provider in the chain (omarchy, terminal config, environment) is
queried in priority order and the merged result is shown with color
swatches. With --css the generated GTK stylesheet is printed instead.`,
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)

	themeCmd.Flags().BoolVar(&themeOpts.css, "css", false,
		"Print the generated GTK CSS instead of a summary")
}

func runTheme(cmd *cobra.Command, args []string) error {
	// Resolve each provider once; the merge and the per-source summary
	// share the results.
	sources := source.Chain(logger)
	resolved := make([]palette.Palette, len(sources))
	for i, src := range sources {
		resolved[i] = src.Resolve()
	}
	merged := palette.Merge(resolved...)

	if themeOpts.css {
		fmt.Print(theme.GenerateCSS(merged, darkmode.IsDark(logger)))
		return nil
	}

	for i, src := range sources {
		if resolved[i].IsEmpty() {
			fmt.Printf("%-10s (no palette)\n", src.Name())
			continue
		}
		fmt.Printf("%-10s %s\n", src.Name(), summarize(resolved[i]))
	}

	fmt.Println()
	fmt.Println("resolved:")
	for _, f := range paletteFields(merged) {
		fmt.Printf("  %-13s %s\n", f.name, swatch(f.value))
	}
	return nil
}

type field struct {
	name  string
	value string
}

func paletteFields(p palette.Palette) []field {
	return []field{
		{"background", p.Background},
		{"foreground", p.Foreground},
		{"selection bg", p.SelectionBG},
		{"selection fg", p.SelectionFG},
		{"caret", p.Caret},
	}
}

// swatch renders a colored block next to the hex value, or a placeholder
// when the field is unset.
func swatch(hex string) string {
	if hex == "" {
		return "(default)"
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("      ")
	return fmt.Sprintf("%s %s", block, hex)
}

func summarize(p palette.Palette) string {
	var parts []string
	for _, f := range paletteFields(p) {
		if f.value != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", strings.ReplaceAll(f.name, " ", "-"), f.value))
		}
	}
	return strings.Join(parts, " ")
}
