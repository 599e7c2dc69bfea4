package request

import (
	"encoding/base64"
	"fmt"
	"strings"
)

type GenerateImage struct {
	Prompt string `json:"prompt"`
}

func (g *GenerateImage) Valid() error {
	if strings.TrimSpace(g.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	return nil
}

type PublishImage struct {
	Base64Image string `json:"base64Image"`
	Prompt      string `json:"prompt"`
}

func (p *PublishImage) Valid() error {
	if p.Base64Image == "" {
		return fmt.Errorf("base64Image is required")
	}
	return nil
}

// ImageBytes decodes the payload, tolerating a data-URI prefix the way
// browser clients tend to send it.
func (p *PublishImage) ImageBytes() ([]byte, error) {
	raw := p.Base64Image
	if idx := strings.Index(raw, ";base64,"); idx != -1 {
		raw = raw[idx+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(raw)
}
