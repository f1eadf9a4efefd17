package pg

import (
	"context"
	"errors"
	"testing"

	"pcaobdash/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"select 1": "select 1",
		"\n  SELECT company,\n\t\tdeficiency_rate\r\n  FROM inspections  ": "SELECT company, deficiency_rate FROM inspections",
		"":      "",
		" \t\n": "",
	}
	for in, want := range cases {
		if got := compact(in); got != want {
			t.Fatalf("compact(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		slow  bool
		err   error
		level string
	}{
		{"fast", false, nil, "info"},
		{"slow", true, nil, "warn"},
		{"failed", false, errors.New(`relation "inspections" does not exist`), "info"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var sink testkit.LogSink
			// a root above warn must not hide the trace
			tr := Tracer(sink.Logger().Level(zerolog.ErrorLevel))
			tr.OnQuery(context.Background(), QueryEvent{
				SQL:       "SELECT *\n  FROM inspections\n WHERE year = $1",
				Args:      []any{2021},
				ElapsedUS: 12345,
				Err:       tc.err,
				Slow:      tc.slow,
			})

			lines := sink.Lines(t, "pg query")
			if len(lines) != 1 {
				t.Fatalf("lines = %v", sink.String())
			}
			ln := lines[0]
			if ln["level"] != tc.level || ln["component"] != "pg" || ln["slow"] != tc.slow {
				t.Fatalf("line = %v", ln)
			}
			if ln["sql"] != "SELECT * FROM inspections WHERE year = $1" || ln["elapsed_ms"] != 12.345 {
				t.Fatalf("line = %v", ln)
			}
			if tc.err != nil && ln["error"] != tc.err.Error() {
				t.Fatalf("error field = %v", ln["error"])
			}
		})
	}
}
