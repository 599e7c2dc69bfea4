package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/config"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	logs.Logger = zerolog.New(io.Discard)
	m.Run()
}

func newTestClient(baseURL string) *Client {
	c := NewClient(config.Cloudinary{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "gemini-images",
	})
	c.baseURL = baseURL
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	return c
}

func TestClient_Signature(t *testing.T) {
	c := newTestClient("")
	sum := sha1.Sum([]byte("folder=gemini-images&timestamp=1700000000secret"))
	want := hex.EncodeToString(sum[:])
	if got := c.signature("1700000000"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestClient_Upload(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/demo/image/upload" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			if !strings.HasPrefix(r.PostForm.Get("file"), "data:image/png;base64,") {
				t.Errorf("file param is not a png data uri")
			}
			if r.PostForm.Get("api_key") != "key" {
				t.Errorf("missing api_key")
			}
			if r.PostForm.Get("signature") == "" {
				t.Errorf("missing signature")
			}
			w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/v1/img123.png"}`))
		}))
		defer srv.Close()

		url, err := newTestClient(srv.URL).Upload(context.Background(), pngBytes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://res.cloudinary.com/demo/image/upload/v1/img123.png" {
			t.Fatalf("unexpected url: %s", url)
		}
	})

	t.Run("rejected upload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Upload(context.Background(), pngBytes)
		if err == nil || !strings.Contains(err.Error(), "Invalid Signature") {
			t.Fatalf("expected signature rejection, got %v", err)
		}
	})

	t.Run("missing secure_url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).Upload(context.Background(), pngBytes)
		if err == nil {
			t.Fatalf("expected error for missing secure_url")
		}
	})
}
