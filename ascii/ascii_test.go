package ascii

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bannerfetch/inject"
)

func TestLogo_PlainProfileHasNoEscapes(t *testing.T) {
	lines := Logo("debian", termenv.Ascii)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.NotContains(t, line, "\x1b")
		assert.NotContains(t, line, "{1}")
		assert.NotContains(t, line, "{2}")
	}
}

func TestLogo_AliasesAndFallback(t *testing.T) {
	assert.Equal(t, Logo("arch", termenv.Ascii), Logo("Manjaro", termenv.Ascii))
	assert.Equal(t, Logo("linux", termenv.Ascii), Logo("no-such-distro", termenv.Ascii))
}

func TestLogo_KeepsLiteralBraces(t *testing.T) {
	lines := Logo("windows-server", termenv.Ascii)
	assert.True(t, strings.HasPrefix(lines[13], "{3=*^"), lines[13])
}

func TestLogo_ColoredProfile(t *testing.T) {
	lines := Logo("fedora", termenv.ANSI256)
	assert.Contains(t, lines[0], "\x1b[")
	assert.Equal(t, VisibleWidth(Logo("fedora", termenv.Ascii)[4]), VisibleWidth(lines[4]))
}

func TestNames(t *testing.T) {
	assert.Contains(t, Names(), "linux")
	assert.Contains(t, Names(), "windows")
}

func TestCompose(t *testing.T) {
	logo := []string{"\x1b[31mAA\x1b[0m", "A"}
	got := Compose(logo, "one\ntwo\nthree", 3, 2)

	assert.Equal(t, []string{
		"\x1b[31mAA\x1b[0m  one",
		"A   two",
		"    three",
	}, got)
}

func TestCompose_LogoTallerThanInfo(t *testing.T) {
	got := Compose([]string{"X", "XX", "X"}, "info", 1, 1)
	assert.Equal(t, []string{"X  info", "XX", "X"}, got)
}

func TestCompose_NoLogo(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Compose(nil, "a\nb", 2, 4))
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 3, VisibleWidth("\x1b[1;36mabc\x1b[0m"))
	assert.Equal(t, 4, VisibleWidth("日本"))
}

func TestPalette(t *testing.T) {
	c := inject.NewContext()
	defer c.Close()

	colored := NewPalette(termenv.ANSI)
	require.NoError(t, colored.Prepare())
	require.NoError(t, colored.Publish(c))

	got, _ := c.Lookup("color.red")
	assert.Equal(t, "\x1b[31m", got)
	got, _ = c.Lookup("color.reset")
	assert.Equal(t, "\x1b[0m", got)
	assert.Equal(t, "\x1b[1m", c.Env()["color_bold"])
	bar, _ := c.Lookup("color.bar")
	assert.Equal(t, 2, strings.Count(bar, "\n")+1)
	assert.Contains(t, bar, "\x1b[101m")
}

func TestPalette_AsciiIsEmpty(t *testing.T) {
	c := inject.NewContext()
	defer c.Close()

	plain := NewPalette(termenv.Ascii)
	require.NoError(t, plain.Prepare())
	require.NoError(t, plain.Publish(c))

	for _, key := range []string{"color.reset", "color.bold", "color.title", "color.bar", "color.cyan"} {
		v, ok := c.Lookup(key)
		assert.True(t, ok, key)
		assert.Empty(t, v, key)
	}
}

func TestProfileFor(t *testing.T) {
	assert.Equal(t, termenv.Ascii, ProfileFor(ColorNever))
	assert.Equal(t, termenv.ANSI256, ProfileFor("ALWAYS"))
}
