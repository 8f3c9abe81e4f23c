package sysinfo

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"bannerfetch/inject"
)

// Uptime is the time since boot.
type Uptime struct {
	Duration time.Duration

	days, hours, minutes, seconds int
	formatted                     string
}

// NewUptime reads the uptime through gopsutil, falling back to
// /proc/uptime on Linux.
func NewUptime(k *Kernel) *Uptime {
	if secs, err := host.Uptime(); err == nil && secs > 0 {
		return &Uptime{Duration: time.Duration(secs) * time.Second}
	}
	if k.Is(KernelLinux) {
		if b, err := os.ReadFile("/proc/uptime"); err == nil {
			return &Uptime{Duration: parseProcUptime(string(b))}
		}
	}
	return &Uptime{}
}

// parseProcUptime reads the first field of /proc/uptime ("12345.67 54321.00").
func parseProcUptime(s string) time.Duration {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// Prepare splits the duration into calendar parts and formats it.
func (u *Uptime) Prepare() error {
	total := int(u.Duration / time.Second)
	u.days = total / 86400
	u.hours = total % 86400 / 3600
	u.minutes = total % 3600 / 60
	u.seconds = total % 60
	u.formatted = FormatUptime(u.Duration)
	return nil
}

func (u *Uptime) Publish(c *inject.Context) error {
	return inject.PublishAll(c,
		inject.Pair{Key: "uptime", Value: u.formatted},
		inject.Pair{Key: "uptime.days", Value: u.days},
		inject.Pair{Key: "uptime.hours", Value: u.hours},
		inject.Pair{Key: "uptime.minutes", Value: u.minutes},
		inject.Pair{Key: "uptime.seconds", Value: u.seconds},
	)
}
