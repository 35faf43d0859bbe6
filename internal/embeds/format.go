package embeds

import (
	"fmt"
	"strconv"
	"time"
)

// minorUnitsPerToken is the chain's conversion between the raw analytics unit
// and a whole token.
const minorUnitsPerToken = 1e9

// FormatDuration renders a remaining-time countdown as "{h}h {m}m {s}s",
// dropping leading zero units. Negative input clamps to "0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatTokens converts a raw minor-unit amount to whole tokens with two
// decimal places.
func FormatTokens(raw int64) string {
	return strconv.FormatFloat(float64(raw)/minorUnitsPerToken, 'f', 2, 64)
}

// FormatSuccessRate renders success/total as a percentage with one decimal
// place. Zero total renders "0%" rather than dividing by zero.
func FormatSuccessRate(success, total int64) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(success)/float64(total)*100)
}
