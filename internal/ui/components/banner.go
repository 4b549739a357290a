package components

import (
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

const bannerArt = `███████╗██╗   ██╗███████╗████████╗
██╔════╝██║   ██║██╔════╝╚══██╔══╝
███████╗██║   ██║█████╗     ██║
╚════██║╚██╗ ██╔╝██╔══╝     ██║
███████║ ╚████╔╝ ███████╗   ██║
╚══════╝  ╚═══╝  ╚══════╝   ╚═╝`

const bannerCompact = "S · V · E · T"

// bannerMinWidth is the narrowest width that fits the block banner.
const bannerMinWidth = 40

// RenderBanner returns the SVET banner styled in the primary color.
// Narrow areas get a one-line fallback.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
