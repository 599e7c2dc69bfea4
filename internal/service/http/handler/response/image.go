package response

import (
	jsoniter "github.com/json-iterator/go"
)

type GenerateImage struct {
	ImageBase64 string `json:"imageBase64"`
}

type PublishImage struct {
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
}

type ListImages struct {
	Images []PublishImage `json:"images"`
}

func (l *ListImages) Marsh() (string, error) {
	return jsoniter.MarshalToString(l)
}
