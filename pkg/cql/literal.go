package cql

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	fnCurrentUser     = "currentUser()"
	fnFavouriteSpaces = "favouriteSpaces()"
)

// quote wraps s in double quotes. Embedded quotes and backslashes are
// passed through unchanged.
func quote(s string) string {
	return `"` + s + `"`
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = quote(v)
	}
	return out
}

// list renders (a, b, c). Elements are expected to be formatted already.
func list(items []string) string {
	return "(" + strings.Join(items, ", ") + ")"
}

func formatIDs(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return out
}

func call(name string, args ...string) string {
	return name + "(" + strings.Join(args, ", ") + ")"
}

// formatIncrement renders a relative date increment such as "-7d".
// Days win over hours, hours over minutes. d must be a whole number of
// minutes.
func formatIncrement(d time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case d%day == 0:
		return quote(fmt.Sprintf("%dd", d/day))
	case d%time.Hour == 0:
		return quote(fmt.Sprintf("%dh", d/time.Hour))
	default:
		return quote(fmt.Sprintf("%dm", d/time.Minute))
	}
}

// dateFunction truncates increment toward zero to whole minutes, so
// anything shorter than a minute renders as a bare call.
func dateFunction(name string, increment time.Duration) string {
	increment = increment.Truncate(time.Minute)
	if increment == 0 {
		return call(name)
	}
	return call(name, formatIncrement(increment))
}

func formatDateTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return quote(t.Format("2006-01-02"))
	}
	return quote(t.Format("2006-01-02 15:04"))
}
