package sysinfo

import (
	"context"
	"encoding/json"
	"os/exec"
	"syscall"
)

// runPowerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v. The window is hidden and the profile skipped.
func runPowerShellJSON(cmd string, v any) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := c.Output()
	if err != nil {
		return err
	}
	return json.Unmarshal(out, v)
}
