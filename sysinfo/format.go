// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// FormatUptime formats a duration for display.
//
// Parameters:
//   - uptime: The duration to format
//
// Returns:
//   - A formatted string (e.g., "2 days, 5 hours, 30 mins")
//
// Minutes are always shown when nothing larger is, so a fresh boot reads "0 mins".
func FormatUptime(uptime time.Duration) string {
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", mins, plural(mins)))
	}

	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// FormatFrequency renders a clock speed given in MHz, e.g. 3600 -> "3.60GHz".
func FormatFrequency(mhz float64) string {
	if mhz <= 0 {
		return ""
	}
	if mhz < 1000 {
		return fmt.Sprintf("%.0fMHz", mhz)
	}
	return fmt.Sprintf("%.2fGHz", mhz/1000)
}

// TruncateString truncates a string to a maximum length and adds ellipsis if needed.
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
