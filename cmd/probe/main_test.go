package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/turismo/backoffice-console/internal/config"
)

func TestRunPrintsList(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/plans/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":4,"name":"Andes"}]}`))
	}))
	defer backend.Close()

	cfg := &config.Config{BackendURL: backend.URL + "/api", ResourceURLs: map[string]string{}}

	var out bytes.Buffer
	if err := run(&out, cfg, "plans", 0, time.Second); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out.String(), "--- plans: 1 ---") || !strings.Contains(out.String(), `"Andes"`) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunMissingEntity(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	defer backend.Close()

	cfg := &config.Config{BackendURL: backend.URL + "/api", ResourceURLs: map[string]string{}}
	if err := run(&bytes.Buffer{}, cfg, "plans", 9, time.Second); err == nil {
		t.Fatal("expected error for missing entity")
	}
}

func TestRunRejectsUnknownResource(t *testing.T) {
	cfg := &config.Config{BackendURL: "http://127.0.0.1:1/api", ResourceURLs: map[string]string{}}
	if err := run(&bytes.Buffer{}, cfg, "hotels", 0, time.Second); err == nil {
		t.Fatal("expected error for unknown resource")
	}
}
