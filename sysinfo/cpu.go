package sysinfo

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"

	"bannerfetch/inject"
)

// CPU describes the first processor package.
type CPU struct {
	Name  string
	Cores int
	MHz   float64

	display string
}

// NewCPU reads the processor model through gopsutil. It is absent when the
// platform exposes no model name, as on some ARM boards.
func NewCPU(k *Kernel) inject.Optional[*CPU] {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 || strings.TrimSpace(infos[0].ModelName) == "" {
		return inject.None[*CPU]()
	}
	c := &CPU{Name: cleanCPUName(infos[0].ModelName), MHz: infos[0].Mhz}
	if n, err := cpu.Counts(true); err == nil {
		c.Cores = n
	}
	if c.MHz == 0 && k.Is(KernelLinux) {
		c.MHz = maxFreqMHz()
	}
	return inject.Some(c)
}

// cleanCPUName drops the clock suffix and trademark noise:
// "Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz" -> "Intel Core i7-8700".
func cleanCPUName(s string) string {
	s, _, _ = strings.Cut(s, "@")
	for _, noise := range []string{"(R)", "(r)", "(TM)", "(tm)", " CPU", " Processor"} {
		s = strings.ReplaceAll(s, noise, "")
	}
	return strings.Join(strings.Fields(s), " ")
}

// Prepare builds "Intel Core i7-8700 (12) @ 3.20GHz".
func (c *CPU) Prepare() error {
	s := c.Name
	if c.Cores > 0 {
		s += fmt.Sprintf(" (%d)", c.Cores)
	}
	if f := FormatFrequency(c.MHz); f != "" {
		s += " @ " + f
	}
	c.display = s
	return nil
}

func (c *CPU) Publish(ctx *inject.Context) error {
	return inject.PublishAll(ctx,
		inject.Pair{Key: "cpu", Value: c.display},
		inject.Pair{Key: "cpu.name", Value: c.Name},
		inject.Pair{Key: "cpu.cores", Value: c.Cores},
		inject.Pair{Key: "cpu.freq", Value: FormatFrequency(c.MHz)},
	)
}
