package sysinfo

import (
	"fmt"
	"path/filepath"
	"strings"

	"bannerfetch/inject"
)

// PackageManager is one package manager and the number of packages it has installed.
type PackageManager struct {
	Name  string
	Count int
}

// PackageManagers lists every package manager found with at least one package.
type PackageManagers struct {
	Managers []PackageManager

	total   int
	names   []string
	summary string
}

// packageQuery describes how to count packages for one manager.
type packageQuery struct {
	name   string
	bin    string
	args   []string
	header int
	kernel []string
}

var packageQueries = []packageQuery{
	{name: "dpkg", bin: "dpkg-query", args: []string{"-f", ".\n", "-W"}, kernel: []string{KernelLinux}},
	{name: "pacman", bin: "pacman", args: []string{"-Qq"}, kernel: []string{KernelLinux}},
	{name: "rpm", bin: "rpm", args: []string{"-qa"}, kernel: []string{KernelLinux}},
	{name: "apk", bin: "apk", args: []string{"info"}, kernel: []string{KernelLinux}},
	{name: "xbps", bin: "xbps-query", args: []string{"-l"}, kernel: []string{KernelLinux}},
	{name: "flatpak", bin: "flatpak", args: []string{"list"}, kernel: []string{KernelLinux}},
	{name: "snap", bin: "snap", args: []string{"list"}, header: 1, kernel: []string{KernelLinux}},
	{name: "nix", bin: "nix-store", args: []string{"-q", "--requisites", "/run/current-system/sw"}, kernel: []string{KernelLinux, KernelDarwin}},
	{name: "brew", bin: "brew", args: []string{"list", "--formula", "-1"}, kernel: []string{KernelLinux, KernelDarwin}},
	{name: "port", bin: "port", args: []string{"installed"}, header: 1, kernel: []string{KernelDarwin}},
	{name: "pkg", bin: "pkg", args: []string{"info"}, kernel: []string{"FreeBSD"}},
}

// NewPackageManagers counts installed packages for every manager that
// applies to the running kernel.
func NewPackageManagers(k *Kernel) *PackageManagers {
	p := &PackageManagers{}
	if k.Is(KernelWindows) {
		if n := windowsProgramCount(); n > 0 {
			p.Managers = append(p.Managers, PackageManager{Name: "programs", Count: n})
		}
		return p
	}
	for _, q := range packageQueries {
		if !q.appliesTo(k) {
			continue
		}
		if n := countLines(runCommand(q.bin, q.args...), q.header); n > 0 {
			p.Managers = append(p.Managers, PackageManager{Name: q.name, Count: n})
		}
	}
	if k.Is(KernelLinux) {
		if n := countPortage(); n > 0 {
			p.Managers = append(p.Managers, PackageManager{Name: "emerge", Count: n})
		}
	}
	return p
}

func (q packageQuery) appliesTo(k *Kernel) bool {
	for _, name := range q.kernel {
		if k.Is(name) {
			return true
		}
	}
	return false
}

// countLines counts non-empty lines after skipping header lines.
func countLines(out string, header int) int {
	n := 0
	for i, line := range strings.Split(out, "\n") {
		if i < header || strings.TrimSpace(line) == "" {
			continue
		}
		n++
	}
	return n
}

// countPortage counts installed Gentoo packages, which are directories
// under /var/db/pkg/<category>/<package>.
func countPortage() int {
	matches, err := filepath.Glob("/var/db/pkg/*/*")
	if err != nil {
		return 0
	}
	return len(matches)
}

// Prepare totals the counts and builds the summary, e.g. "1523 (dpkg), 12 (flatpak)".
func (p *PackageManagers) Prepare() error {
	p.total = 0
	p.names = p.names[:0]
	parts := make([]string, 0, len(p.Managers))
	for _, m := range p.Managers {
		p.total += m.Count
		p.names = append(p.names, m.Name)
		parts = append(parts, fmt.Sprintf("%d (%s)", m.Count, m.Name))
	}
	p.summary = strings.Join(parts, ", ")
	return nil
}

func (p *PackageManagers) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "packages", Value: p.summary},
		inject.Pair{Key: "packages.count", Value: p.total},
		inject.Pair{Key: "packages.managers", Value: p.names},
	)
}
