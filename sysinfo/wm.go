package sysinfo

import (
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"bannerfetch/inject"
)

// WM is the window manager or compositor.
type WM struct {
	Name string
}

// envCompositors maps an environment variable set by a compositor to its name.
var envCompositors = []struct{ env, name string }{
	{"HYPRLAND_INSTANCE_SIGNATURE", "Hyprland"},
	{"SWAYSOCK", "sway"},
	{"NIRI_SOCKET", "niri"},
	{"WAYFIRE_SOCKET", "Wayfire"},
}

// knownWMs maps process names to window manager names.
var knownWMs = map[string]string{
	"gnome-shell":   "Mutter",
	"mutter":        "Mutter",
	"kwin_x11":      "KWin",
	"kwin_wayland":  "KWin",
	"kwin":          "KWin",
	"xfwm4":         "Xfwm4",
	"openbox":       "Openbox",
	"i3":            "i3",
	"bspwm":         "bspwm",
	"awesome":       "awesome",
	"dwm":           "dwm",
	"herbstluftwm":  "herbstluftwm",
	"fluxbox":       "Fluxbox",
	"icewm":         "IceWM",
	"marco":         "Marco",
	"muffin":        "Muffin",
	"weston":        "Weston",
	"river":         "river",
	"labwc":         "labwc",
	"Hyprland":      "Hyprland",
	"sway":          "sway",
	"xmonad":        "xmonad",
	"spectrwm":      "spectrwm",
	"enlightenment": "Enlightenment",
}

// NewWM detects the window manager. It is absent when nothing is found,
// which is the normal case on a text console.
func NewWM(k *Kernel) inject.Optional[*WM] {
	var name string
	switch {
	case k.Is(KernelWindows):
		name = "DWM"
	case k.Is(KernelDarwin):
		name = "Quartz Compositor"
	default:
		name = wmFromEnv(os.Getenv)
		if name == "" && os.Getenv("DISPLAY") != "" {
			name = parseWmctrl(runCommand("wmctrl", "-m"))
		}
		if name == "" {
			name = wmFromProcesses(processNames())
		}
	}
	if name == "" {
		return inject.None[*WM]()
	}
	return inject.Some(&WM{Name: name})
}

func wmFromEnv(getenv func(string) string) string {
	for _, c := range envCompositors {
		if getenv(c.env) != "" {
			return c.name
		}
	}
	return ""
}

// parseWmctrl reads the "Name: ..." line of "wmctrl -m".
func parseWmctrl(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "Name:"); ok {
			if v = strings.TrimSpace(v); v != "N/A" {
				return v
			}
		}
	}
	return ""
}

func wmFromProcesses(names []string) string {
	for _, n := range names {
		if wm, ok := knownWMs[n]; ok {
			return wm
		}
	}
	return ""
}

func processNames() []string {
	procs, err := process.Processes()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		if n, err := p.Name(); err == nil {
			names = append(names, n)
		}
	}
	return names
}

func (w *WM) Prepare() error { return nil }

func (w *WM) Publish(c *inject.Context) error {
	return c.Set("wm", w.Name)
}
