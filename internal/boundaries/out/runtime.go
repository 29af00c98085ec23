// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, shell, AWS, operating system).
package out

import (
	"context"

	"github.com/bnema/hostpage/internal/domain"
)

// ContainerRuntime defines the read-only view of the local container engine.
type ContainerRuntime interface {
	// Ping checks that the engine answers.
	Ping(ctx context.Context) error
	// ListImages lists local images whose repository matches reference.
	// An empty reference lists every image.
	ListImages(ctx context.Context, reference string) ([]domain.LocalImage, error)
}
