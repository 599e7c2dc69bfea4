package handler

import (
	"context"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/gallery"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/hub"
	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/provider"
)

// Generator is the generative-image provider seen from the HTTP layer.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]provider.Part, error)
}

// Publisher runs the publication pipeline for one request.
type Publisher interface {
	Publish(ctx context.Context, imageBytes []byte, prompt string) (gallery.Image, error)
}

var (
	generator    Generator
	publisher    Publisher
	galleryStore gallery.Store
	broadcastHub *hub.Hub
)

// Init wires the handlers' collaborators once at startup.
func Init(g Generator, p Publisher, s gallery.Store, h *hub.Hub) {
	generator = g
	publisher = p
	galleryStore = s
	broadcastHub = h
}
