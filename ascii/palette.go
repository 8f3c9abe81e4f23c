// Package ascii draws distribution logos and lays them out next to the
// rendered info block. It also publishes the color escape sequences that
// templates use.
package ascii

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"bannerfetch/inject"
)

// Color modes accepted by ProfileFor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ProfileFor resolves a color mode to a termenv profile. "auto" inspects
// stdout and honors NO_COLOR and CLICOLOR_FORCE.
func ProfileFor(mode string) termenv.Profile {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return termenv.ANSI256
	case ColorNever:
		return termenv.Ascii
	default:
		return termenv.NewOutput(os.Stdout).EnvColorProfile()
	}
}

// basicColors are the eight ANSI colors by the names templates use.
var basicColors = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// Palette publishes raw escape sequences under color.* keys so templates
// can style text without knowing the terminal's capabilities. Under the
// Ascii profile every sequence is empty.
type Palette struct {
	profile termenv.Profile
	seqs    map[string]string
}

// NewPalette returns a palette for p.
func NewPalette(p termenv.Profile) *Palette {
	return &Palette{profile: p}
}

// Prepare computes every sequence for the profile.
func (p *Palette) Prepare() error {
	p.seqs = map[string]string{
		"color.reset": p.sgr(termenv.ResetSeq),
		"color.bold":  p.sgr(termenv.BoldSeq),
		"color.title": p.fg("6"),
		"color.label": p.fg("4"),
		"color.bar":   p.bar(),
	}
	for i, name := range basicColors {
		p.seqs["color."+name] = p.fg(strconv.Itoa(i))
	}
	return nil
}

func (p *Palette) Publish(c *inject.Context) error {
	pairs := make([]inject.Pair, 0, len(p.seqs))
	for k, v := range p.seqs {
		pairs = append(pairs, inject.Pair{Key: k, Value: v})
	}
	return inject.PublishAll(c, pairs...)
}

func (p *Palette) sgr(seq string) string {
	if p.profile == termenv.Ascii || seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func (p *Palette) fg(color string) string {
	return p.sgr(p.profile.Color(color).Sequence(false))
}

func (p *Palette) bg(color string) string {
	return p.sgr(p.profile.Color(color).Sequence(true))
}

// bar draws the sixteen terminal colors as two rows of blocks.
func (p *Palette) bar() string {
	if p.profile == termenv.Ascii {
		return ""
	}
	var b strings.Builder
	for row := 0; row < 2; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for i := 0; i < 8; i++ {
			b.WriteString(p.bg(strconv.Itoa(row*8 + i)))
			b.WriteString("   ")
		}
		b.WriteString(p.sgr(termenv.ResetSeq))
	}
	return b.String()
}
