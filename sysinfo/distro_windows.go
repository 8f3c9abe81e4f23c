package sysinfo

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// windowsDistro reads the product name ("Windows 11 Pro") and display
// version ("23H2"). Windows 11 still reports "Windows 10" in ProductName, so
// the build number disambiguates.
func windowsDistro() *Distro {
	d := &Distro{Name: "Windows", ID: "windows"}

	productName := getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "ProductName")
	if productName == "" {
		return d
	}
	build := 0
	if _, _, b, err := rtlGetVersion(); err == nil {
		build = int(b)
	} else if n, err := strconv.Atoi(getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "CurrentBuild")); err == nil {
		build = n
	}
	if build >= 22000 && strings.Contains(strings.ToLower(productName), "windows 10") {
		productName = strings.Replace(productName, "Windows 10", "Windows 11", 1)
	}

	d.PrettyName = productName
	d.Version = getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "DisplayVersion")
	if d.Version != "" {
		d.PrettyName = fmt.Sprintf("%s %s", productName, d.Version)
	}
	if strings.Contains(strings.ToLower(productName), "server") {
		d.ID = "windows-server"
	}
	return d
}
