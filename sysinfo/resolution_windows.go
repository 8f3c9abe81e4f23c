package sysinfo

// windowsResolution returns the primary monitor's size using
// GetSystemMetrics with SM_CXSCREEN and SM_CYSCREEN.
func windowsResolution() (int, int) {
	const (
		SM_CXSCREEN = 0
		SM_CYSCREEN = 1
	)

	width, _, _ := procGetSystemMetrics.Call(uintptr(SM_CXSCREEN))
	height, _, _ := procGetSystemMetrics.Call(uintptr(SM_CYSCREEN))
	return int(width), int(height)
}
