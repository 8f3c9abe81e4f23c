//go:build !windows

package sysinfo

// Stubs for helpers only Windows implements. Callers branch on the kernel
// name, so these are never reached on other systems.

func windowsDistro() *Distro {
	return &Distro{Name: "Windows", ID: "windows"}
}

func windowsProgramCount() int { return 0 }

func windowsResolution() (int, int) { return 0, 0 }

func windowsGPUs() []string { return nil }
