package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary accents
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleSeed  = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

const iconArrow = "→"

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printSeed prints the seed a piece was generated from, so it can be
// reproduced with --seed.
func printSeed(seed uint64) {
	fmt.Println("  " + styleDim.Render("seed") + " " + styleSeed.Render(fmt.Sprintf("%d", seed)))
}
