package time

import (
	"testing"
	"time"
)

func TestFormatters(t *testing.T) {
	t.Parallel()

	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2021, 12, 31, 22, 30, 0, 0, est)

	if got := Date(late); got != "2021-12-31" {
		t.Fatalf("Date = %q, want the local calendar day", got)
	}
	if got := Stamp(late); got != "2022-01-01T03:30:00Z" {
		t.Fatalf("Stamp = %q", got)
	}
	if p := Ptr(late); p == nil || p.Location() != time.UTC || !p.Equal(late) {
		t.Fatalf("Ptr = %v", p)
	}

	var zero time.Time
	if Date(zero) != "" || Stamp(zero) != "" || Ptr(zero) != nil {
		t.Fatalf("zero time should render empty")
	}
}
