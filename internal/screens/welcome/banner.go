package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ██████╗ ███████╗███████╗██████╗ ███████╗██╗████████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗██╔════╝██║╚══██╔══╝
 ██║     ███████║██████╔╝█████╗  █████╗  ██████╔╝█████╗  ██║   ██║
 ██║     ██╔══██║██╔══██╗██╔══╝  ██╔══╝  ██╔══██╗██╔══╝  ██║   ██║
 ╚██████╗██║  ██║██║  ██║███████╗███████╗██║  ██║██║     ██║   ██║
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝   ╚═╝`

const bannerCompact = "C A R E E R F I T"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 70

// RenderBanner returns the banner in the primary color, or a one-line
// fallback when width is too narrow for the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
