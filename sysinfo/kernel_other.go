//go:build !unix && !windows

package sysinfo

import "runtime"

func platformKernel() *Kernel {
	return &Kernel{Name: runtime.GOOS}
}
