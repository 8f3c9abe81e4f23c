//go:build !linux && !windows

package sysinfo

// hostModel asks sysctl, which knows the model on macOS and the BSDs.
func hostModel() string {
	return cleanModel("", runCommand("sysctl", "-n", "hw.model"), "")
}
