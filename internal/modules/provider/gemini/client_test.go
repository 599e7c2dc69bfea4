package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/provider"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	logs.Logger = zerolog.New(io.Discard)
	m.Run()
}

func TestClient_Generate(t *testing.T) {
	t.Run("maps text and image parts in order", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/models/test-model:generateContent" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.Header.Get("x-goog-api-key") != "test-key" {
				t.Errorf("missing api key header")
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"parts":[
				{"text":"ok"},
				{"inlineData":{"mimeType":"image/png","data":"aGVsbG8="}}
			]}}]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-model", "test-key")
		parts, err := client.Generate(context.Background(), "a red fox")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(parts) != 2 {
			t.Fatalf("expected 2 parts, got %d", len(parts))
		}
		if parts[0].Text != "ok" || parts[0].InlineData != nil {
			t.Fatalf("first part should be text, got %+v", parts[0])
		}
		if parts[1].InlineData == nil || parts[1].InlineData.Data != "aGVsbG8=" {
			t.Fatalf("second part should carry inline data, got %+v", parts[1])
		}
	})

	t.Run("empty candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-model", "test-key")
		_, err := client.Generate(context.Background(), "a red fox")
		if !errors.Is(err, provider.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("candidate without parts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-model", "test-key")
		_, err := client.Generate(context.Background(), "a red fox")
		if !errors.Is(err, provider.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("provider error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-model", "test-key")
		_, err := client.Generate(context.Background(), "a red fox")
		if !errors.Is(err, ErrCall) {
			t.Fatalf("expected ErrCall, got %v", err)
		}
	})

	t.Run("unreachable provider", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "test-model", "test-key")
		_, err := client.Generate(context.Background(), "a red fox")
		if !errors.Is(err, ErrCall) {
			t.Fatalf("expected ErrCall, got %v", err)
		}
	})
}
