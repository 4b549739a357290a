package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

// renderTitle returns the banner with the school tagline.
func renderTitle(cw int, compact bool) string {
	bannerWidth := cw
	if compact {
		bannerWidth = 0
	}
	tagline := theme.Subtitle.Render("Študuj. Precvičuj. Zlepšuj sa.")
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.RenderBanner(bannerWidth) + "\n\n" + tagline)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

// renderMenu renders each menu item as a fixed-width button. Subject
// buttons are bright; app buttons below a gap are quieter.
func renderMenu(items []string, selected, subjectCount, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgCard).
		Background(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	subjectBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	appBtn := subjectBtn.
		Foreground(theme.TextDim)

	var buttons []string
	for i, label := range items {
		if i == subjectCount && i > 0 {
			buttons = append(buttons, "")
		}
		switch {
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		case i < subjectCount:
			buttons = append(buttons, subjectBtn.Render(label))
		default:
			buttons = append(buttons, appBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected, subjectCount, cw int) string {
	var lines []string
	for i, label := range items {
		if i == subjectCount && i > 0 {
			lines = append(lines, "")
		}
		var line string
		switch {
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgCard).
				Background(theme.Text).
				Bold(true).
				Render(" ▸ " + label + " ")
		case i < subjectCount:
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		default:
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderFrame wraps content in a double-border frame, centered
// vertically and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
