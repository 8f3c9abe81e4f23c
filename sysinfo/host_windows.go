package sysinfo

import "golang.org/x/sys/windows/registry"

// hostModel reads the manufacturer and model the firmware reports.
func hostModel() string {
	const sysInfoKey = `SYSTEM\CurrentControlSet\Control\SystemInformation`
	const biosKey = `HARDWARE\DESCRIPTION\System\BIOS`

	manufacturer := getRegistryString(registry.LOCAL_MACHINE, sysInfoKey, "SystemManufacturer")
	model := getRegistryString(registry.LOCAL_MACHINE, sysInfoKey, "SystemProductName")
	if manufacturer == "" {
		manufacturer = getRegistryString(registry.LOCAL_MACHINE, biosKey, "SystemManufacturer")
	}
	if model == "" {
		model = getRegistryString(registry.LOCAL_MACHINE, biosKey, "SystemProductName")
	}
	return cleanModel(manufacturer, model, "")
}
