package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationRegex = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration converts an ISO-8601 duration like "PT1H2M3S" into a compact
// human-readable string like "1h 2m 3s". Zero components are omitted, except
// that a fully zero duration still renders as "0s".
func FormatDuration(isoDuration string) string {
	match := isoDurationRegex.FindStringSubmatch(isoDuration)
	if match == nil {
		return "Unknown duration"
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}
