package sysinfo

import (
	"runtime"

	"bannerfetch/inject"
)

// Kernel names used to branch platform probing.
const (
	KernelLinux   = "Linux"
	KernelDarwin  = "Darwin"
	KernelWindows = "Windows_NT"
)

// Kernel describes the running kernel.
type Kernel struct {
	Name         string
	Version      string
	Architecture string
}

// NewKernel queries the running kernel.
func NewKernel() *Kernel {
	k := platformKernel()
	if k.Architecture == "" {
		k.Architecture = runtime.GOARCH
	}
	return k
}

// Is reports whether the kernel has the given name.
func (k *Kernel) Is(name string) bool {
	return k != nil && k.Name == name
}

func (k *Kernel) Prepare() error { return nil }

func (k *Kernel) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "kernel.name", Value: k.Name},
		inject.Pair{Key: "kernel.version", Value: k.Version},
		inject.Pair{Key: "kernel.architecture", Value: k.Architecture},
	)
}
