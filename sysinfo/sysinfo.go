// Package sysinfo provides the fact probes: one value per fact domain
// (kernel, distribution, uptime, packages, shell, display, desktop, CPU,
// GPU, user, host).
//
// Every constructor queries the system eagerly and never fails. A fact that
// cannot be determined is left empty, and probes that only exist on some
// machines (Resolution, WM, DE, CPU, Gpu) are returned as inject.Optional so
// that absence publishes nothing. Probes that depend on another probe take
// it as a constructor argument and do not keep it.
package sysinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// commandTimeout bounds every external command a probe runs.
const commandTimeout = 1500 * time.Millisecond

// runCommand runs name with args and returns trimmed stdout. A missing
// binary, a non-zero exit or a timeout all yield "".
func runCommand(name string, args ...string) string {
	if _, err := exec.LookPath(name); err != nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// firstLine returns the first non-empty line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
