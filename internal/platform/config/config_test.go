package config

import (
	"slices"
	"testing"
	"time"

	kit "pcaobdash/internal/platform/testkit"
)

func TestPrefix_Composes(t *testing.T) {
	t.Setenv("PCAOB_DATA_PATH", " reports.csv ")
	data := New().Prefix("PCAOB_").Prefix("DATA_")
	if got := data.key("PATH"); got != "PCAOB_DATA_PATH" {
		t.Fatalf("key = %q", got)
	}
	if got := data.MustString("PATH"); got != "reports.csv" {
		t.Fatalf("MustString = %q", got)
	}
	if got := data.MayString("SHEET", "Sheet1"); got != "Sheet1" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("PCAOB_DATA_TABLE", "   ")
	kit.MustPanic(t, func() { _ = data.MustString("TABLE") })
}

func TestMayScalars(t *testing.T) {
	t.Setenv("PCAOB_API_CHART_WIDTH", " 640 ")
	t.Setenv("PCAOB_API_RENDER_LIMIT", "many")
	t.Setenv("PCAOB_API_SWAGGER", "false")
	t.Setenv("PCAOB_API_PROFILER", "sometimes")
	t.Setenv("PCAOB_WEB_SESSION_TTL", "45m")
	t.Setenv("PCAOB_DATA_TIMEOUT", "soon")

	api := New().Prefix("PCAOB_API_")
	ints := []struct {
		key  string
		want int
	}{
		{"CHART_WIDTH", 640},
		{"RENDER_LIMIT", 4},
		{"CHART_HEIGHT", 4},
	}
	for _, tc := range ints {
		if got := api.MayInt(tc.key, 4); got != tc.want {
			t.Fatalf("MayInt(%s) = %d, want %d", tc.key, got, tc.want)
		}
	}
	if api.MayBool("SWAGGER", true) {
		t.Fatalf("SWAGGER should read false")
	}
	if !api.MayBool("PROFILER", true) {
		t.Fatalf("bad bool should fall back to true")
	}

	if got := New().Prefix("PCAOB_WEB_").MayDuration("SESSION_TTL", time.Minute); got != 45*time.Minute {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := New().Prefix("PCAOB_DATA_").MayDuration("TIMEOUT", 30*time.Second); got != 30*time.Second {
		t.Fatalf("bad duration = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	def := []string{"http://localhost:4000"}
	cases := []struct {
		val  string
		want []string
	}{
		{" https://a.example , ,https://b.example ", []string{"https://a.example", "https://b.example"}},
		{" , , ", def},
		{"", def},
	}
	for _, tc := range cases {
		t.Setenv("PCAOB_API_CORS_ORIGINS", tc.val)
		if got := New().Prefix("PCAOB_API_").MayCSV("CORS_ORIGINS", def); !slices.Equal(got, tc.want) {
			t.Fatalf("MayCSV(%q) = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestMayEnum(t *testing.T) {
	kinds := []string{"csv", "xlsx", "parquet", "postgres", "clickhouse"}
	c := New().Prefix("PCAOB_DATA_")

	if got := c.MayEnum("KIND", "", kinds...); got != "" {
		t.Fatalf("unset enum = %q", got)
	}
	if got := c.MayEnum("KIND", "csv", kinds...); got != "csv" {
		t.Fatalf("default enum = %q", got)
	}
	t.Setenv("PCAOB_DATA_KIND", "XLSX")
	if got := c.MayEnum("KIND", "csv", kinds...); got != "xlsx" {
		t.Fatalf("enum = %q, want the allowed spelling", got)
	}
	t.Setenv("PCAOB_DATA_KIND", "sqlite")
	kit.MustPanic(t, func() { _ = c.MayEnum("KIND", "csv", kinds...) })
}

func TestMayAddr(t *testing.T) {
	cases := []struct {
		val  string
		want string
	}{
		{"", ":4000"},
		{"8080", ":8080"},
		{":9000", ":9000"},
		{"127.0.0.1:0", "127.0.0.1:0"},
	}
	for _, tc := range cases {
		t.Setenv("PCAOB_API_PORT", tc.val)
		if got := New().Prefix("PCAOB_").MayAddr("API_PORT", ":4000"); got != tc.want {
			t.Fatalf("MayAddr(%q) = %q, want %q", tc.val, got, tc.want)
		}
	}
	for _, bad := range []string{"70000", ":http", "host:-1"} {
		t.Setenv("PCAOB_API_PORT", bad)
		kit.MustPanic(t, func() { _ = New().Prefix("PCAOB_").MayAddr("API_PORT", ":4000") })
	}
	if got := New().MayAddr("UNSET_ADDR_FOR_TEST", ""); got != "" {
		t.Fatalf("empty default = %q", got)
	}
}
