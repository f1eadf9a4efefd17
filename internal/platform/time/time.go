// Package time formats the timestamps and dates the dashboard shows or serves
package time

import "time"

// DateLayout is how report dates read from typed columns are rendered
const DateLayout = "2006-01-02"

// Ptr returns a pointer to t in UTC, nil when t is zero so omitempty drops it
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}

// Stamp renders t as RFC 3339 in UTC, empty for the zero time
func Stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// Date renders the calendar date of t in its own location, empty for the zero time
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
