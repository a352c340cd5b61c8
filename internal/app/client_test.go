package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adda-Baaj/todoctl/internal/config"
	"github.com/Adda-Baaj/todoctl/internal/domain"
	"github.com/Adda-Baaj/todoctl/internal/runner"
	"github.com/Adda-Baaj/todoctl/internal/todoapi"
)

func newTestClient(t *testing.T) (*Client, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	c, err := NewClient(&config.Config{Color: config.ColorNever}, Streams{Out: &out, Err: &errOut}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, &out, &errOut
}

func TestRunReadsTodo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/todos/42" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("todo 42"))
	}))
	defer srv.Close()

	c, out, errOut := newTestClient(t)
	if err := c.Run(context.Background(), srv.URL, domain.Read(42)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "todo 42\n" {
		t.Fatalf("body: got %q", out.String())
	}
	if errOut.String() != "Status: 200\nContent-Type: text/plain\n" {
		t.Fatalf("diagnostics: got %q", errOut.String())
	}
}

func TestRunRejectsBaseWithoutSchemeBeforeNetwork(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { hits++ }))
	defer srv.Close()

	c, out, errOut := newTestClient(t)
	host := srv.Listener.Addr().String()
	err := c.Run(context.Background(), host, domain.List())
	if !errors.Is(err, todoapi.ErrInvalidURI) {
		t.Fatalf("expected ErrInvalidURI, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("no request should reach the server, got %d", hits)
	}
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Fatalf("nothing should be printed")
	}
}

func TestRunSurfacesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, _, _ := newTestClient(t)
	if err := c.Run(context.Background(), base, domain.Delete(3)); !errors.Is(err, runner.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestNewClientValidates(t *testing.T) {
	if _, err := NewClient(nil, Streams{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewClient(&config.Config{}, Streams{}, nil); err == nil {
		t.Fatalf("expected error for missing streams")
	}
}
