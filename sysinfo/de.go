package sysinfo

import (
	"os"
	"strings"

	"bannerfetch/inject"
)

// DE is the desktop environment.
type DE struct {
	Name    string
	Version string

	display string
}

// deAliases normalizes XDG_CURRENT_DESKTOP values.
var deAliases = map[string]string{
	"gnome":        "GNOME",
	"kde":          "Plasma",
	"plasma":       "Plasma",
	"x-cinnamon":   "Cinnamon",
	"cinnamon":     "Cinnamon",
	"xfce":         "Xfce",
	"mate":         "MATE",
	"lxqt":         "LXQt",
	"lxde":         "LXDE",
	"budgie":       "Budgie",
	"budgie:gnome": "Budgie",
	"pantheon":     "Pantheon",
	"unity":        "Unity",
	"deepin":       "Deepin",
	"cosmic":       "COSMIC",
}

// deVersionCommands gives the command whose output carries each DE's version.
var deVersionCommands = map[string][]string{
	"GNOME":    {"gnome-shell", "--version"},
	"Plasma":   {"plasmashell", "--version"},
	"Cinnamon": {"cinnamon", "--version"},
	"Xfce":     {"xfce4-session", "--version"},
	"MATE":     {"mate-session", "--version"},
	"LXQt":     {"lxqt-session", "--version"},
	"Budgie":   {"budgie-desktop", "--version"},
}

// NewDE detects the desktop environment. The distribution is needed to
// strip vendor prefixes such as "ubuntu:GNOME" and, on Windows, to pick the
// shell theme family from the release.
func NewDE(k *Kernel, d *Distro) inject.Optional[*DE] {
	var de *DE
	switch {
	case k.Is(KernelWindows):
		de = windowsDE(d)
	case k.Is(KernelDarwin):
		de = &DE{Name: "Aqua"}
	default:
		name := deFromEnv(os.Getenv, d.ID)
		if name != "" {
			de = &DE{Name: name}
			if cmd, ok := deVersionCommands[name]; ok {
				de.Version = versionPattern.FindString(firstLine(runCommand(cmd[0], cmd[1:]...)))
			}
		}
	}
	if de == nil {
		return inject.None[*DE]()
	}
	return inject.Some(de)
}

// deFromEnv reads XDG_CURRENT_DESKTOP, then DESKTOP_SESSION. Entries that
// only name the distribution are skipped.
func deFromEnv(getenv func(string) string, distroID string) string {
	raw := getenv("XDG_CURRENT_DESKTOP")
	if raw == "" {
		raw = getenv("DESKTOP_SESSION")
	}
	if raw == "" {
		return ""
	}
	if alias, ok := deAliases[strings.ToLower(raw)]; ok {
		return alias
	}
	for _, part := range strings.Split(raw, ":") {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, distroID) {
			continue
		}
		if alias, ok := deAliases[strings.ToLower(part)]; ok {
			return alias
		}
		return part
	}
	return ""
}

// windowsDE maps the Windows release to its visual style.
func windowsDE(d *Distro) *DE {
	name := d.PrettyName
	switch {
	case strings.Contains(name, "Windows 11"), strings.Contains(name, "Windows 10"):
		return &DE{Name: "Fluent"}
	case strings.Contains(name, "Windows 8"):
		return &DE{Name: "Metro"}
	case strings.Contains(name, "Windows 7"), strings.Contains(name, "Vista"):
		return &DE{Name: "Aero"}
	}
	return nil
}

func (de *DE) Prepare() error {
	de.display = joinNonEmpty(" ", de.Name, de.Version)
	return nil
}

func (de *DE) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "de", Value: de.display},
		inject.Pair{Key: "de.name", Value: de.Name},
		inject.Pair{Key: "de.version", Value: de.Version},
	)
}
