// params/date.go
package params

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 layout the API accepts for since/before.
const DateLayout = "2006-01-02T15:04:05.000Z"

// DateParams lists the query parameters that carry dates.
var DateParams = []string{"since", "before"}

var relativeDatePattern = regexp.MustCompile(`^(\d+)\s*([A-Za-z]+)$`)

// FormatDate renders time values in UTC with millisecond precision. Strings pass through
// untouched so callers may send pagination ids (e.g. a transaction id for since). The bool
// reports whether v was a supported type.
func FormatDate(v any) (string, bool) {
	switch v := v.(type) {
	case time.Time:
		return v.UTC().Format(DateLayout), true
	case *time.Time:
		if v == nil {
			return "", false
		}
		return v.UTC().Format(DateLayout), true
	case string:
		return v, true
	default:
		return "", false
	}
}

// ParseDate accepts an RFC 3339 timestamp, a YYYY-MM-DD date, or a relative period such as
// "7d", "2 weeks" or "1M", which is subtracted from now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}

	m := relativeDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognised date %q", s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised date %q: %w", s, err)
	}

	switch unit := m[2]; {
	case unit == "M":
		return now.AddDate(0, -n, 0), nil
	case unit == "m":
		return now.Add(-time.Duration(n) * time.Minute), nil
	default:
		switch strings.TrimSuffix(strings.ToLower(unit), "s") {
		case "", "sec", "second":
			return now.Add(-time.Duration(n) * time.Second), nil
		case "min", "minute":
			return now.Add(-time.Duration(n) * time.Minute), nil
		case "h", "hour":
			return now.Add(-time.Duration(n) * time.Hour), nil
		case "d", "day":
			return now.AddDate(0, 0, -n), nil
		case "w", "week":
			return now.AddDate(0, 0, -7*n), nil
		case "month":
			return now.AddDate(0, -n, 0), nil
		case "y", "year":
			return now.AddDate(-n, 0, 0), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date unit %q", m[2])
}
