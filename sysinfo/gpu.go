package sysinfo

import (
	"regexp"
	"strings"

	"bannerfetch/inject"
)

// maxGPUName bounds a GPU name so one verbose vendor string cannot widen the banner.
const maxGPUName = 60

// GPUs lists the display controllers.
type GPUs struct {
	Names []string
}

// NewGPU lists GPUs via lspci, or CIM on Windows. Absent when none are found.
func NewGPU(k *Kernel) inject.Optional[*GPUs] {
	var names []string
	if k.Is(KernelWindows) {
		names = windowsGPUs()
	} else {
		names = parseLspci(runCommand("lspci", "-mm"))
	}
	if len(names) == 0 {
		return inject.None[*GPUs]()
	}
	return inject.Some(&GPUs{Names: names})
}

var lspciField = regexp.MustCompile(`"([^"]*)"`)

// parseLspci reads "lspci -mm" lines and keeps VGA, 3D and display controllers.
//
// A line looks like:
//
//	00:02.0 "VGA compatible controller" "Intel Corporation" "UHD Graphics 630" -r00 ...
func parseLspci(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		fields := lspciField.FindAllStringSubmatch(line, -1)
		if len(fields) < 3 {
			continue
		}
		class := fields[0][1]
		if !strings.Contains(class, "VGA") && !strings.Contains(class, "3D") && !strings.Contains(class, "Display") {
			continue
		}
		names = append(names, gpuName(fields[1][1], fields[2][1]))
	}
	return names
}

// gpuName shortens the vendor and prefers the marketing name in brackets,
// e.g. "NVIDIA Corporation" + "GA104 [GeForce RTX 3070]" -> "NVIDIA GeForce RTX 3070".
func gpuName(vendor, device string) string {
	switch {
	case strings.Contains(vendor, "NVIDIA"):
		vendor = "NVIDIA"
	case strings.Contains(vendor, "Advanced Micro Devices"), strings.Contains(vendor, "AMD"):
		vendor = "AMD"
	case strings.Contains(vendor, "Intel"):
		vendor = "Intel"
	}
	if i := strings.LastIndex(device, "["); i >= 0 {
		if j := strings.Index(device[i:], "]"); j > 0 {
			device = device[i+1 : i+j]
		}
	}
	return TruncateString(joinNonEmpty(" ", vendor, device), maxGPUName)
}

func (g *GPUs) Prepare() error { return nil }

func (g *GPUs) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "gpu", Value: g.Names[0]},
		inject.Pair{Key: "gpus", Value: g.Names},
		inject.Pair{Key: "gpu.count", Value: len(g.Names)},
	)
}
