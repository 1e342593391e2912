package integrations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"lodash","version":"4.17.21"}`))
	}))
	defer server.Close()

	var got struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	c := NewClient(time.Second, nil)
	if err := c.Get(context.Background(), server.URL, &got); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Name != "lodash" || got.Version != "4.17.21" {
		t.Errorf("Get() decoded %+v", got)
	}
}

func TestClient_Get_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept header = %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(time.Second, map[string]string{"Accept": "application/json"})
	var v map[string]any
	if err := c.Get(context.Background(), server.URL, &v); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
}

func TestClient_Get_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not found"))
	}))
	defer server.Close()

	c := NewClient(time.Second, nil)
	var v map[string]any
	err := c.Get(context.Background(), server.URL, &v)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", upstream.StatusCode)
	}
	if upstream.Body != "Not found" {
		t.Errorf("Body = %q, want %q", upstream.Body, "Not found")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error message %q should contain the status code", err.Error())
	}
}

func TestClient_Get_NetworkError(t *testing.T) {
	c := NewClient(time.Second, nil)
	var v map[string]any
	err := c.Get(context.Background(), "http://127.0.0.1:1", &v)
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}
