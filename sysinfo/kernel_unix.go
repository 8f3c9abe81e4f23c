//go:build unix

package sysinfo

import (
	"golang.org/x/sys/unix"
)

func platformKernel() *Kernel {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return &Kernel{}
	}
	return &Kernel{
		Name:         unix.ByteSliceToString(u.Sysname[:]),
		Version:      unix.ByteSliceToString(u.Release[:]),
		Architecture: unix.ByteSliceToString(u.Machine[:]),
	}
}
