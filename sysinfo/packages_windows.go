package sysinfo

import "golang.org/x/sys/windows/registry"

// windowsProgramCount counts installed programs in both the 64-bit and
// 32-bit uninstall registry keys.
func windowsProgramCount() int {
	count := 0
	paths := []string{
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
	}

	for _, path := range paths {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		subkeys, err := k.ReadSubKeyNames(-1)
		_ = k.Close()
		if err != nil {
			continue
		}
		count += len(subkeys)
	}
	return count
}
