// Package gallery holds the durable list of published images behind a
// backend-neutral Store. The backend is a deployment choice made once at
// startup: a MySQL table or a single flat JSON file.
package gallery

import (
	"context"
	"errors"
	"time"
)

var ErrPersistence = errors.New("gallery persistence failed")

// Image is the durable record of one published image. Records are append
// only; nothing in this package updates or deletes them.
type Image struct {
	URL       string    `json:"url"`
	ThumbURL  string    `json:"thumbUrl,omitempty"`
	Prompt    string    `json:"prompt,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Store is the persistence contract shared by both backends. List returns
// records newest-first regardless of how the backend orders them
// internally.
type Store interface {
	Append(ctx context.Context, img Image) error
	List(ctx context.Context) ([]Image, error)
}
