package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"pcaobdash/internal/platform/config"
	phttp "pcaobdash/internal/platform/net/http"
)

func TestNewServer_Addr(t *testing.T) {
	cases := []struct {
		name, apiPort, port, want string
	}{
		{"default", "", "", ":4000"},
		{"api port", "8080", "", ":8080"},
		{"shell port wins", ":12345", "8501", ":8501"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PCAOB_API_PORT", tc.apiPort)
			t.Setenv("PORT", tc.port)
			if got := phttp.NewServer(config.New().Prefix("PCAOB_")).Addr(); got != tc.want {
				t.Fatalf("addr = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestServer_ServeDrainsOnCancel(t *testing.T) {
	srv := phttp.NewServer(config.New().Prefix("PCAOB_TEST_"))
	entered := make(chan struct{})
	srv.Router().Get("/charts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		close(entered)
		time.Sleep(100 * time.Millisecond)
		_, _ = io.WriteString(w, "drawn")
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	body := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/charts/clients-share.png")
		if err != nil {
			body <- "error: " + err.Error()
			return
		}
		defer func() { _ = resp.Body.Close() }()
		b, _ := io.ReadAll(resp.Body)
		body <- string(b)
	}()

	<-entered
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Serve did not return after cancel")
	}
	if got := <-body; got != "drawn" {
		t.Fatalf("in-flight request got %q", got)
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	t.Setenv("PCAOB_API_PORT", "256.0.0.1:4000")
	if err := phttp.NewServer(config.New().Prefix("PCAOB_")).Run(context.Background()); err == nil {
		t.Fatalf("expected a listen error")
	}
}
