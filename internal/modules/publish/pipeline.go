// Package publish orchestrates one image publication: validate, upload to
// the image host, append to the gallery, announce to realtime
// subscribers. The pipeline itself holds no state between requests.
package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/gallery"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/hub"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/storage"
)

var (
	ErrNoImage  = errors.New("no image provided")
	ErrNoPrompt = errors.New("no prompt provided")
	ErrUpload   = errors.New("upload failed")
)

// Broadcaster is the slice of the hub the pipeline needs.
type Broadcaster interface {
	Publish(event hub.Event)
}

type Pipeline struct {
	host          storage.Host
	store         gallery.Store
	broadcaster   Broadcaster
	requirePrompt bool
	thumbRatio    float64
	thumbnail     func(b []byte, ratio float64) ([]byte, error)
}

type Option func(*Pipeline)

// WithThumbnails makes the pipeline upload a scaled-down copy alongside
// the original. Thumbnail failures are logged, never fatal.
func WithThumbnails(ratio float64, fn func(b []byte, ratio float64) ([]byte, error)) Option {
	return func(p *Pipeline) {
		p.thumbRatio = ratio
		p.thumbnail = fn
	}
}

// WithRequiredPrompt rejects publications that carry no prompt.
func WithRequiredPrompt() Option {
	return func(p *Pipeline) {
		p.requirePrompt = true
	}
}

func New(host storage.Host, store gallery.Store, broadcaster Broadcaster, opts ...Option) *Pipeline {
	p := &Pipeline{
		host:        host,
		store:       store,
		broadcaster: broadcaster,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish runs the pipeline to completion. On upload failure nothing was
// persisted or broadcast. On persistence failure the hosted object is
// already live and stays orphaned from the gallery; that inconsistency is
// surfaced to the caller rather than rolled back. The broadcast step can
// never fail the request.
func (p *Pipeline) Publish(ctx context.Context, imageBytes []byte, prompt string) (gallery.Image, error) {
	if len(imageBytes) == 0 {
		return gallery.Image{}, ErrNoImage
	}
	if p.requirePrompt && prompt == "" {
		return gallery.Image{}, ErrNoPrompt
	}

	url, err := p.host.Upload(ctx, imageBytes)
	if err != nil {
		return gallery.Image{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	var thumbURL string
	if p.thumbRatio > 0 && p.thumbnail != nil {
		thumbBytes, err := p.thumbnail(imageBytes, p.thumbRatio)
		if err == nil {
			thumbURL, err = p.host.Upload(ctx, thumbBytes)
		}
		if err != nil {
			logs.Logger.Warn().Err(err).Msg("thumbnail skipped")
			thumbURL = ""
		}
	}

	record := gallery.Image{
		URL:       url,
		ThumbURL:  thumbURL,
		Prompt:    prompt,
		CreatedAt: time.Now(),
	}
	err = p.store.Append(ctx, record)
	if err != nil {
		logs.Logger.Error().Err(err).Str("url", url).Msg("publish persisted nothing, hosted image orphaned")
		return gallery.Image{}, err
	}

	p.broadcaster.Publish(hub.Event{
		Type:     hub.EventNewImage,
		URL:      record.URL,
		ThumbURL: record.ThumbURL,
		Prompt:   record.Prompt,
	})
	return record, nil
}
