package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-abyss/internal/games/abyss"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List player skins",
	Long: `Shows the skin catalog. Skins only change colors.

Pick one with 'abyss play --skin <id>' or Left/Right in the menu;
the menu remembers your choice.`,
	Run: runSkins,
}

func runSkins(_ *cobra.Command, _ []string) {
	current := openSettings(newLogger()).Get().Skin

	fmt.Println("Skins:")
	fmt.Println()
	for _, info := range abyss.Skins {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(info.Body))).
			Render("██")
		marker := " "
		if info.ID == current {
			marker = "*"
		}
		fmt.Printf(" %s %s %-10s %s (%s)\n", marker, swatch, info.ID, info.Name, info.Desc)
	}
	fmt.Println()
	fmt.Println("* selected")
}
