package sysinfo

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"bannerfetch/inject"
)

var versionPattern = regexp.MustCompile(`\d+(\.\d+)+`)

// Shell is the user's login shell.
type Shell struct {
	Name    string
	Path    string
	Version string

	display string
}

// NewShell detects the shell from SHELL, or PowerShell/cmd on Windows.
func NewShell(k *Kernel) *Shell {
	if k.Is(KernelWindows) {
		return windowsShell()
	}
	path := os.Getenv("SHELL")
	if path == "" {
		return &Shell{}
	}
	s := &Shell{Path: path, Name: filepath.Base(path)}
	s.Version = parseShellVersion(runCommand(path, "--version"))
	return s
}

// windowsShell prefers PowerShell when its module path is set, else COMSPEC.
func windowsShell() *Shell {
	if os.Getenv("PSModulePath") != "" {
		for _, bin := range []string{"pwsh", "powershell"} {
			if v := runCommand(bin, "-NoProfile", "-Command", "$PSVersionTable.PSVersion.ToString()"); v != "" {
				return &Shell{Name: "PowerShell", Path: bin, Version: v}
			}
		}
		return &Shell{Name: "PowerShell"}
	}
	comspec := os.Getenv("COMSPEC")
	if comspec == "" {
		comspec = "cmd.exe"
	}
	return &Shell{Name: filepath.Base(comspec), Path: comspec}
}

// parseShellVersion picks the first dotted version number from the first
// line of "<shell> --version".
func parseShellVersion(out string) string {
	return versionPattern.FindString(firstLine(out))
}

// Prepare builds the display form, "bash 5.2.15".
func (s *Shell) Prepare() error {
	s.display = strings.TrimSpace(joinNonEmpty(" ", s.Name, s.Version))
	return nil
}

func (s *Shell) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "shell", Value: s.display},
		inject.Pair{Key: "shell.name", Value: s.Name},
		inject.Pair{Key: "shell.path", Value: s.Path},
		inject.Pair{Key: "shell.version", Value: s.Version},
	)
}
