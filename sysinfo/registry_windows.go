package sysinfo

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procGetSystemMetrics = moduser32.NewProc("GetSystemMetrics")
	procRtlGetVersion    = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")
)

// getRegistryString reads a string value from the registry.
//
// Parameters:
//   - key: The root registry key (e.g., registry.LOCAL_MACHINE)
//   - path: The subkey path
//   - valueName: The name of the value to read
//
// Returns:
//   - The string value, or "" if the key, path, or value can't be read
func getRegistryString(key registry.Key, path string, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return value
}

// rtlGetVersion calls ntdll.RtlGetVersion to obtain accurate Windows version info.
func rtlGetVersion() (major uint32, minor uint32, build uint32, err error) {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, 0, callErr
		}
		return 0, 0, 0, fmt.Errorf("RtlGetVersion failed: ret=%d", ret)
	}
	return v.dwMajorVersion, v.dwMinorVersion, v.dwBuildNumber, nil
}
