package normalize

import (
	"testing"
)

// Test table covers each stage and combined pipelines
func TestFold_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity ascii", in: "deloitte", out: "deloitte"},
		{name: "empty", in: "", out: ""},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'k', 'p', 'm', 'g', 0x80}),
			out:  "kpmg",
		},
		{name: "case fold", in: "Ernst & Young", out: "ernst & young"},
		{name: "remove zero-widths", in: "De\u200Bloitte", out: "deloitte"},
		{name: "remove combining marks", in: "Société", out: "societe"},
		{name: "width fold fullwidth", in: "ＫＰＭＧ LLP", out: "kpmg llp"},
		{name: "nfkc ligature", in: "Oﬃce", out: "office"},
		{name: "collapse whitespace", in: "  United\t\tStates \n", out: "united states"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fold(tt.in); got != tt.out {
				t.Fatalf("Fold(%q) = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestHeaderKey_Equivalence(t *testing.T) {
	want := HeaderKey("Inspection Year")
	for _, in := range []string{"inspection_year", "INSPECTION-YEAR", " Inspection  Year ", "inspection.year"} {
		if got := HeaderKey(in); got != want {
			t.Fatalf("HeaderKey(%q) = %q, want %q", in, got, want)
		}
	}
	if got, want := HeaderKey("Part I.A Deficiency Rate"), "part i a deficiency rate"; got != want {
		t.Fatalf("HeaderKey = %q, want %q", got, want)
	}
}

func TestFold_Concurrent(t *testing.T) {
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				if got := Fold("PricewaterhouseCoopers"); got != "pricewaterhousecoopers" {
					t.Errorf("Fold = %q", got)
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
