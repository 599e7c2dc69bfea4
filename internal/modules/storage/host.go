// Package storage abstracts the external image host. Which host serves a
// deployment is decided once at startup; the pipeline only sees Host.
package storage

import "context"

// Host uploads image bytes to the external host and returns a stable URL.
type Host interface {
	Upload(ctx context.Context, b []byte) (string, error)
}
