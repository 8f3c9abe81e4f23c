package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"bannerfetch/render"
)

// DefaultGap is the number of spaces between the logo and the info block.
const DefaultGap = 4

// Compose places the logo to the left of the rendered info block.
//
// Parameters:
//   - logo: one string per line of art, possibly colored
//   - info: the rendered info text
//   - infoHeight: the published line count of info
//   - gap: spaces between the two columns
//
// Returns:
//   - max(len(logo), infoHeight) lines, top aligned, with every logo line
//     padded to the widest logo line so the info column stays straight
func Compose(logo []string, info string, infoHeight, gap int) []string {
	infoLines := strings.Split(info, "\n")
	if infoHeight > len(infoLines) || infoHeight < 0 {
		infoHeight = len(infoLines)
	}
	if len(logo) == 0 {
		return infoLines[:infoHeight]
	}

	logoWidth := 0
	for _, line := range logo {
		if w := VisibleWidth(line); w > logoWidth {
			logoWidth = w
		}
	}

	rows := len(logo)
	if infoHeight > rows {
		rows = infoHeight
	}
	spacer := strings.Repeat(" ", gap)

	out := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(logo) {
			left = logo[i] + strings.Repeat(" ", logoWidth-VisibleWidth(logo[i]))
		} else {
			left = strings.Repeat(" ", logoWidth)
		}
		if i < infoHeight {
			right = infoLines[i]
		}
		out = append(out, strings.TrimRight(left+spacer+right, " "))
	}
	return out
}

// VisibleWidth is the terminal cell width of s once control sequences are
// removed. Wide runes such as CJK count as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(render.StripControl(s))
}
