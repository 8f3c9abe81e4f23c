package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOrder(t *testing.T) {
	good := []string{
		KernelProbe, UserProbe, HostProbe, DistroProbe, UptimeProbe,
		PackageManagersProbe, ShellProbe, ResolutionProbe, WMProbe,
		DEProbe, CPUProbe, GPUProbe,
	}
	assert.NoError(t, ValidateOrder(good))

	swapped := append([]string(nil), good...)
	swapped[0], swapped[3] = swapped[3], swapped[0]
	assert.ErrorContains(t, ValidateOrder(swapped), "before its dependency")

	assert.ErrorContains(t, ValidateOrder(good[:len(good)-1]), "never constructed")
	assert.ErrorContains(t, ValidateOrder(append(good, "bogus")), "unknown probe")
	assert.ErrorContains(t, ValidateOrder(append(good, KernelProbe)), "more than once")
}

func TestValidateOrder_DEAfterDistro(t *testing.T) {
	order := []string{
		KernelProbe, UserProbe, HostProbe, DEProbe, DistroProbe, UptimeProbe,
		PackageManagersProbe, ShellProbe, ResolutionProbe, WMProbe, CPUProbe, GPUProbe,
	}
	assert.ErrorContains(t, ValidateOrder(order), `"de"`)
}
