package sysinfo

import "strings"

// windowsGPUs lists video controllers through CIM, skipping the
// "Microsoft Basic Display Adapter" fallback driver.
func windowsGPUs() []string {
	psCmd := "ConvertTo-Json -Compress -InputObject @(Get-CimInstance Win32_VideoController | Select-Object -Property Name)"
	var controllers []struct {
		Name string
	}
	if err := runPowerShellJSON(psCmd, &controllers); err != nil {
		return nil
	}
	var names []string
	for _, c := range controllers {
		name := strings.TrimSpace(c.Name)
		if name == "" || strings.Contains(strings.ToLower(name), "microsoft basic") {
			continue
		}
		names = append(names, TruncateString(name, maxGPUName))
	}
	return names
}
