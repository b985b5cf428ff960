package format

import (
	"fmt"
	"strings"
)

// MaskToken hides the middle of a bot token so it can be printed safely.
// Short tokens are masked entirely.
func MaskToken(token string) string {
	if len(token) < 16 {
		return strings.Repeat("*", len(token))
	}
	return token[:10] + "..." + token[len(token)-5:]
}

// FormatUptime formats uptime in a readable format.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// FormatBytes formats bytes in a readable format.
func FormatBytes(bytes uint64) string {
	gb := float64(bytes) / 1024 / 1024 / 1024
	if gb >= 1000 {
		return fmt.Sprintf("%.0fT", gb/1024)
	}
	return fmt.Sprintf("%.0fG", gb)
}

// Truncate truncates a string to max length, marking the cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
