package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"bannerfetch/inject"
)

// Display is one active output mode.
type Display struct {
	Width   int
	Height  int
	Refresh float64
}

func (d Display) String() string {
	if d.Refresh > 0 {
		return fmt.Sprintf("%dx%d @ %sHz", d.Width, d.Height, strconv.FormatFloat(d.Refresh, 'f', -1, 64))
	}
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Resolution holds the current mode of every active display. The first
// display is treated as primary.
type Resolution struct {
	Displays []Display

	display string
}

// NewResolution returns the absent state when no display can be found, for
// example on a headless server or over SSH.
func NewResolution() inject.Optional[*Resolution] {
	var displays []Display
	switch runtime.GOOS {
	case "windows":
		if w, h := windowsResolution(); w > 0 && h > 0 {
			displays = []Display{{Width: w, Height: h}}
		}
	case "darwin":
		displays = parseSystemProfiler(runCommand("system_profiler", "SPDisplaysDataType"))
	default:
		displays = parseXrandr(runCommand("xrandr", "--nograb", "--current"))
		if len(displays) == 0 {
			displays = drmModes()
		}
	}
	if len(displays) == 0 {
		return inject.None[*Resolution]()
	}
	return inject.Some(&Resolution{Displays: displays})
}

// parseXrandr reads the active modes, marked with '*', from xrandr output.
func parseXrandr(out string) []Display {
	var displays []Display
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.Contains(line, "*") {
			continue
		}
		d, ok := parseMode(fields[0])
		if !ok {
			continue
		}
		for _, f := range fields[1:] {
			if strings.Contains(f, "*") {
				d.Refresh, _ = strconv.ParseFloat(strings.Trim(f, "*+"), 64)
				break
			}
		}
		displays = append(displays, d)
	}
	return displays
}

var profilerResolution = regexp.MustCompile(`Resolution:\s*(\d+)\s*x\s*(\d+)(?:.*@\s*([\d.]+)\s*Hz)?`)

// parseSystemProfiler reads "Resolution: 2560 x 1600 @ 60.00Hz" lines.
func parseSystemProfiler(out string) []Display {
	var displays []Display
	for _, m := range profilerResolution.FindAllStringSubmatch(out, -1) {
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		d := Display{Width: w, Height: h}
		if m[3] != "" {
			d.Refresh, _ = strconv.ParseFloat(m[3], 64)
		}
		displays = append(displays, d)
	}
	return displays
}

// drmModes reads the preferred mode of every connected DRM connector. It
// works without an X server but cannot tell the refresh rate.
func drmModes() []Display {
	paths, _ := filepath.Glob("/sys/class/drm/*/modes")
	var displays []Display
	for _, p := range paths {
		status, err := os.ReadFile(filepath.Join(filepath.Dir(p), "status"))
		if err != nil || strings.TrimSpace(string(status)) != "connected" {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if d, ok := parseMode(firstLine(string(b))); ok {
			displays = append(displays, d)
		}
	}
	return displays
}

// parseMode parses "1920x1080" (an optional "i" interlace suffix is ignored).
func parseMode(s string) (Display, bool) {
	w, h, ok := strings.Cut(strings.TrimSuffix(s, "i"), "x")
	if !ok {
		return Display{}, false
	}
	width, err1 := strconv.Atoi(w)
	height, err2 := strconv.Atoi(h)
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		return Display{}, false
	}
	return Display{Width: width, Height: height}, true
}

// Prepare joins every display into the display string.
func (r *Resolution) Prepare() error {
	parts := make([]string, 0, len(r.Displays))
	for _, d := range r.Displays {
		parts = append(parts, d.String())
	}
	r.display = strings.Join(parts, ", ")
	return nil
}

func (r *Resolution) Publish(c *inject.Context) error {
	primary := r.Displays[0]
	pairs := []inject.Pair{
		{Key: "resolution", Value: r.display},
		{Key: "resolution.width", Value: primary.Width},
		{Key: "resolution.height", Value: primary.Height},
	}
	if primary.Refresh > 0 {
		pairs = append(pairs, inject.Pair{Key: "resolution.refresh", Value: primary.Refresh})
	}
	return inject.PublishAll(c, pairs...)
}
