package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reelfinder/reelfinder/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := config.ProvidersConfig{
		BaseURL: server.URL,
		Country: "us",
		Timeout: 5,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/providers" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("title"); got != "The Matrix" {
			t.Errorf("title = %q, want %q", got, "The Matrix")
		}
		if got := r.URL.Query().Get("country"); got != "us" {
			t.Errorf("country = %q, want %q", got, "us")
		}
		w.Write([]byte(`{"services":["Netflix","Max"]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	services, err := client.Lookup(context.Background(), "The Matrix", "us")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if !reflect.DeepEqual(services, []string{"Netflix", "Max"}) {
		t.Errorf("Lookup() = %v, want [Netflix Max]", services)
	}
}

func TestClient_Lookup_TitleURLEncoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("title"); got != "Crouching Tiger, Hidden Dragon" {
			t.Errorf("title = %q, want decoded original", got)
		}
		w.Write([]byte(`{"services":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	if _, err := client.Lookup(context.Background(), "Crouching Tiger, Hidden Dragon", "us"); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
}

func TestClient_Lookup_MalformedServices(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"services not an array", `{"services":"Netflix"}`},
		{"services missing", `{}`},
		{"services null", `{"services":null}`},
		{"not an object", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server)
			services, err := client.Lookup(context.Background(), "Anything", "us")
			if err != nil {
				t.Fatalf("Lookup() error = %v, want malformed payload degraded to empty", err)
			}
			if services == nil || len(services) != 0 {
				t.Errorf("Lookup() = %v, want empty non-nil list", services)
			}
		})
	}
}

func TestClient_Lookup_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.Lookup(context.Background(), "Anything", "us")
	if !errors.Is(err, ErrAPIError) {
		t.Errorf("Lookup() error = %v, want ErrAPIError", err)
	}
}
