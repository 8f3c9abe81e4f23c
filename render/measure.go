package render

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// controlSeq matches terminal control sequences such as color codes:
// ESC '[' then digits or semicolons then one letter.
var controlSeq = regexp.MustCompile(`(?i)\x1b\[[0-9;]*[a-z]`)

// StripControl removes terminal control sequences from s.
func StripControl(s string) string {
	return controlSeq.ReplaceAllString(s, "")
}

// Measure returns the visible width and height of rendered text.
//
// Width is the largest number of characters (runes, not bytes) on any line
// once control sequences are removed. Height is the number of lines after
// splitting on '\n', so a trailing line break adds an empty final line.
func Measure(text string) (width, height int) {
	for _, line := range strings.Split(StripControl(text), "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
		height++
	}
	return width, height
}
