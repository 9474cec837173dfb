package dashboard

import (
	"math"
	"strconv"
	"strings"
)

// justNowLabel is the label given to entries created in this session.
// It passes every window filter by explicit rule, not by parser
// fallback: elapsed hours is exactly zero.
const justNowLabel = "Just now"

// ParseElapsedHours converts a relative-time label of the shape
// "<integer> <unit> ago" into elapsed hours. Anything unparseable maps
// to +Inf so that no finite window filter can accidentally include it.
func ParseElapsedHours(label string) float64 {
	if label == justNowLabel {
		return 0
	}

	parts := strings.Fields(label)
	if len(parts) < 2 {
		return math.Inf(1)
	}

	value, err := strconv.Atoi(parts[0])
	if err != nil {
		return math.Inf(1)
	}

	switch {
	case strings.HasPrefix(parts[1], "minute"):
		return float64(value) / 60
	case strings.HasPrefix(parts[1], "hour"):
		return float64(value)
	case strings.HasPrefix(parts[1], "day"):
		return float64(value) * 24
	default:
		return math.Inf(1)
	}
}
