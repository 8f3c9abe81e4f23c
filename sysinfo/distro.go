package sysinfo

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/v4/host"

	"bannerfetch/inject"
)

// osReleasePaths are tried in order; see os-release(5).
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Distro describes the operating system distribution.
type Distro struct {
	Name         string
	ID           string
	Version      string
	Codename     string
	PrettyName   string
	Architecture string

	fullname string
}

// NewDistro detects the distribution. On Linux the os-release file is
// authoritative; Windows reads the product name from the registry; other
// kernels ask gopsutil.
func NewDistro(k *Kernel) *Distro {
	var d *Distro
	switch {
	case k.Is(KernelLinux):
		d = linuxDistro()
	case k.Is(KernelWindows):
		d = windowsDistro()
	default:
		d = platformDistro(k)
	}
	d.Architecture = k.Architecture
	return d
}

func linuxDistro() *Distro {
	for _, path := range osReleasePaths {
		fields, err := godotenv.Read(path)
		if err != nil {
			continue
		}
		return distroFromOSRelease(fields)
	}
	return &Distro{Name: "Linux", ID: "linux"}
}

// distroFromOSRelease maps os-release fields onto a Distro.
func distroFromOSRelease(f map[string]string) *Distro {
	d := &Distro{
		Name:       f["NAME"],
		ID:         strings.ToLower(f["ID"]),
		Version:    f["VERSION_ID"],
		Codename:   f["VERSION_CODENAME"],
		PrettyName: f["PRETTY_NAME"],
	}
	if d.Name == "" {
		d.Name = "Linux"
	}
	if d.ID == "" {
		d.ID = "linux"
	}
	return d
}

func platformDistro(k *Kernel) *Distro {
	platform, _, version, err := host.PlatformInformation()
	if err != nil || platform == "" {
		return &Distro{Name: k.Name, ID: strings.ToLower(k.Name)}
	}
	d := &Distro{ID: strings.ToLower(platform), Name: platform, Version: version}
	if k.Is(KernelDarwin) {
		d.Name = "macOS"
	}
	return d
}

// Fullname is the display name derived by Prepare.
func (d *Distro) Fullname() string { return d.fullname }

// Prepare composes the display name: the pretty name when the system has
// one, otherwise name and version, followed by the architecture.
func (d *Distro) Prepare() error {
	base := d.PrettyName
	if base == "" {
		base = joinNonEmpty(" ", d.Name, d.Version)
	}
	d.fullname = joinNonEmpty(" ", base, d.Architecture)
	return nil
}

func (d *Distro) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "distro.name", Value: d.Name},
		inject.Pair{Key: "distro.id", Value: d.ID},
		inject.Pair{Key: "distro.version", Value: d.Version},
		inject.Pair{Key: "distro.codename", Value: d.Codename},
		inject.Pair{Key: "distro.fullname", Value: d.fullname},
	)
}
