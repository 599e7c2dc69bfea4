package provider

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestExtractImage(t *testing.T) {
	imgBytes := []byte{0x89, 'P', 'N', 'G', 0x01, 0x02, 0x03}
	imgPart := Part{InlineData: &Blob{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString(imgBytes)}}

	t.Run("no image part", func(t *testing.T) {
		_, err := ExtractImage([]Part{{Text: "here you go"}, {Text: "enjoy"}})
		if !errors.Is(err, ErrNoImagePart) {
			t.Fatalf("expected ErrNoImagePart, got %v", err)
		}
	})

	t.Run("empty part list", func(t *testing.T) {
		_, err := ExtractImage(nil)
		if !errors.Is(err, ErrNoImagePart) {
			t.Fatalf("expected ErrNoImagePart, got %v", err)
		}
	})

	t.Run("single image part", func(t *testing.T) {
		got, err := ExtractImage([]Part{imgPart})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, imgBytes) {
			t.Fatalf("expected %v, got %v", imgBytes, got)
		}
	})

	t.Run("image part followed by text", func(t *testing.T) {
		got, err := ExtractImage([]Part{imgPart, {Text: "ok"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, imgBytes) {
			t.Fatalf("expected image bytes, got %v", got)
		}
	})

	t.Run("text before image is skipped", func(t *testing.T) {
		got, err := ExtractImage([]Part{{Text: "ok"}, imgPart})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, imgBytes) {
			t.Fatalf("expected image bytes, got %v", got)
		}
	})

	t.Run("first of two image parts wins", func(t *testing.T) {
		second := Part{InlineData: &Blob{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString([]byte("other"))}}
		got, err := ExtractImage([]Part{imgPart, second})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, imgBytes) {
			t.Fatalf("expected first image part bytes, got %v", got)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := ExtractImage([]Part{{InlineData: &Blob{Data: "not base64!!"}}})
		if err == nil {
			t.Fatalf("expected decode error")
		}
	})
}
