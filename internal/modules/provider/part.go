// Package provider defines the generation response parts and the policy
// for pulling image bytes out of them. The concrete wire client lives in
// the gemini subpackage.
package provider

import (
	"encoding/base64"
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse means the provider answered but sent no content
	// parts at all.
	ErrEmptyResponse = errors.New("provider returned no content")
	// ErrNoImagePart means the response had parts but none carried
	// inline image data. Kept distinct from ErrEmptyResponse: this is a
	// valid response that just did not satisfy the request.
	ErrNoImagePart = errors.New("no image part in provider response")
)

// Part is one element of the provider's multi-modal response. Exactly one
// of Text or InlineData is set.
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline binary payload, base64 on the wire.
type Blob struct {
	MimeType string
	Data     string
}

// ExtractImage returns the decoded bytes of the first inline-image part,
// skipping text parts. First match wins: if the provider ever returns more
// than one image part the rest are ignored. Whether that happens in
// practice is unverified, so the policy is kept explicit rather than
// assumed away.
func ExtractImage(parts []Part) ([]byte, error) {
	for _, p := range parts {
		if p.InlineData == nil {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("decode inline image data: %w", err)
		}
		return raw, nil
	}
	return nil, ErrNoImagePart
}
