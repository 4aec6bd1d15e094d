package remote

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// defaultAccentColor is substituted when a colour field arrives empty.
const defaultAccentColor = "#3788d8"

// epochMillisThreshold splits numeric timestamps: magnitudes below it are
// UNIX seconds, at or above it milliseconds. The store emits both, per
// record, for the same field.
const epochMillisThreshold = 1e10

// dateLayouts are tried in order for string-encoded dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseEpoch interprets a numeric timestamp. NaN and infinities yield nil.
func parseEpoch(v float64) *time.Time {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	ms := v
	if math.Abs(v) < epochMillisThreshold {
		ms = v * 1000
	}
	t := time.UnixMilli(int64(ms)).UTC()
	return &t
}

// parseExternalDate normalises a string-encoded date: ISO-8601 first, then
// reinterpretation as a numeric epoch, else nil. strconv accepts "NaN" and
// "Inf" spellings, so those fall through parseEpoch to nil as well.
func parseExternalDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return parseEpoch(v)
	}
	return nil
}

// normalizeColor canonicalises the store's colour encodings: bare 3- or
// 6-digit hex gets a "#" prefix, empty becomes the default accent, and
// anything else (named colours, already-prefixed hex) passes through
// unchanged. Idempotent by construction.
func normalizeColor(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultAccentColor
	}
	if strings.HasPrefix(s, "#") {
		return s
	}
	if isBareHex(s) {
		return "#" + s
	}
	return s
}

func isBareHex(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// clampPercent coerces a completion value into 0 to 100.
func clampPercent(v float64) int {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v)
}

// orEmpty keeps list fields non-nil through conversion.
func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
