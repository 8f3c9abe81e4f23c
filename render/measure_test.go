package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		width, height int
	}{
		{"empty", "", 0, 1},
		{"two lines", "XX\nX", 2, 2},
		{"trailing newline", "a\nb\n", 1, 3},
		{"multibyte", "é", 1, 1},
		{"wide cjk counted as one rune", "日本", 2, 1},
		{"color codes ignored", "\x1b[1;34mabc\x1b[0m", 3, 1},
		{"uppercase final letter", "\x1b[2Kab", 2, 1},
		{"no parameters", "\x1b[mab", 2, 1},
		{"longest line wins", "\x1b[31mshort\x1b[0m\nmuch longer", 11, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := Measure(tc.in)
			assert.Equal(t, tc.width, w, "width")
			assert.Equal(t, tc.height, h, "height")
		})
	}
}

func TestStripControl_LeavesBareBrackets(t *testing.T) {
	assert.Equal(t, "[1m", StripControl("[1m"))
	assert.Equal(t, "x", StripControl("\x1b[38;5;208mx"))
}
