package sysinfo

import "github.com/zcalusic/sysinfo"

// hostModel reads the DMI product fields exposed under /sys/class/dmi.
func hostModel() string {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return cleanModel(si.Product.Vendor, si.Product.Name, si.Product.Version)
}
