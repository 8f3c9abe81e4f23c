package sysinfo

import "fmt"

// Probe names, used for diagnostics and for the dependency graph.
const (
	KernelProbe          = "kernel"
	UserProbe            = "user"
	HostProbe            = "host"
	DistroProbe          = "distro"
	UptimeProbe          = "uptime"
	PackageManagersProbe = "packages"
	ShellProbe           = "shell"
	ResolutionProbe      = "resolution"
	WMProbe              = "wm"
	DEProbe              = "de"
	CPUProbe             = "cpu"
	GPUProbe             = "gpu"
)

// Dependencies lists, for each probe, the probes its constructor takes.
// It must agree with the constructor signatures in this package.
var Dependencies = map[string][]string{
	KernelProbe:          nil,
	UserProbe:            nil,
	HostProbe:            nil,
	DistroProbe:          {KernelProbe},
	UptimeProbe:          {KernelProbe},
	PackageManagersProbe: {KernelProbe},
	ShellProbe:           {KernelProbe},
	ResolutionProbe:      nil,
	WMProbe:              {KernelProbe},
	DEProbe:              {KernelProbe, DistroProbe},
	CPUProbe:             {KernelProbe},
	GPUProbe:             {KernelProbe},
}

// ValidateOrder checks that order names every probe exactly once and that
// each probe comes after all of its dependencies.
func ValidateOrder(order []string) error {
	seen := make(map[string]bool, len(order))
	for i, name := range order {
		deps, ok := Dependencies[name]
		if !ok {
			return fmt.Errorf("unknown probe %q at position %d", name, i)
		}
		if seen[name] {
			return fmt.Errorf("probe %q appears more than once", name)
		}
		for _, dep := range deps {
			if !seen[dep] {
				return fmt.Errorf("probe %q at position %d is constructed before its dependency %q", name, i, dep)
			}
		}
		seen[name] = true
	}
	for name := range Dependencies {
		if !seen[name] {
			return fmt.Errorf("probe %q is never constructed", name)
		}
	}
	return nil
}
