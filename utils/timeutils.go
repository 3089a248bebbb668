package utils

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are the service-time layouts accepted from the
// provider, tried in order. Times without an offset are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseISOTimestamp parses a service time, trying each supported layout
// in order and reporting false when none matches.
func ParseISOTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseISODurationMinutes converts the restricted PT[nH][nM] partial
// duration the provider emits into whole minutes. Date components,
// seconds and fractional values are outside the accepted subset;
// anything not matching it reports false so callers treat the duration
// as absent rather than failing the document.
func ParseISODurationMinutes(s string) (int, bool) {
	rest, ok := strings.CutPrefix(s, "PT")
	if !ok || rest == "" {
		return 0, false
	}
	total := 0
	if i := strings.IndexByte(rest, 'H'); i >= 0 {
		h, err := strconv.Atoi(rest[:i])
		if err != nil || h < 0 {
			return 0, false
		}
		total += h * 60
		rest = rest[i+1:]
	}
	if rest != "" {
		m, ok := strings.CutSuffix(rest, "M")
		if !ok || m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil || n < 0 {
			return 0, false
		}
		total += n
	}
	return total, true
}
