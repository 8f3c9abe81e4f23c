package sysinfo

import (
	"os"
	"strconv"
	"strings"
)

// maxFreqMHz reads cpufreq's maximum for the first core, which is reported in kHz.
func maxFreqMHz() float64 {
	b, err := os.ReadFile("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")
	if err != nil {
		return 0
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return 0
	}
	return khz / 1000
}
