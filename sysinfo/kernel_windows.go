package sysinfo

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// platformKernel reports the NT kernel version. RtlGetVersion is preferred
// because the registry lies to processes running in compatibility mode.
func platformKernel() *Kernel {
	k := &Kernel{
		Name:         KernelWindows,
		Architecture: strings.ToLower(os.Getenv("PROCESSOR_ARCHITECTURE")),
	}
	if maj, mnr, build, err := rtlGetVersion(); err == nil {
		k.Version = fmt.Sprintf("%d.%d.%d", maj, mnr, build)
		return k
	}
	if build := getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "CurrentBuild"); build != "" {
		k.Version = "10.0." + build
	}
	return k
}
