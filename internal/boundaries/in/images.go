package in

import (
	"context"

	"github.com/bnema/hostpage/internal/domain"
)

// ImageService defines the contract for inspecting locally built images.
type ImageService interface {
	// ListLocal returns local images for the configured repository.
	ListLocal(ctx context.Context) ([]domain.LocalImage, error)

	// Preflight reports whether the container engine is reachable.
	Preflight(ctx context.Context) error
}
