// Package images implements local image inspection.
package images

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bnema/hostpage/internal/boundaries/out"
	"github.com/bnema/hostpage/internal/domain"
)

// Service implements the ImageService interface.
type Service struct {
	runtime    out.ContainerRuntime
	repository string
	log        *log.Logger
}

// NewService creates a new image service scoped to repository.
func NewService(runtime out.ContainerRuntime, repository string, logger *log.Logger) *Service {
	return &Service{
		runtime:    runtime,
		repository: repository,
		log:        logger,
	}
}

// ListLocal returns local images of the configured repository.
func (s *Service) ListLocal(ctx context.Context) ([]domain.LocalImage, error) {
	images, err := s.runtime.ListImages(ctx, s.repository)
	if err != nil {
		return nil, fmt.Errorf("failed to list images for %s: %w", s.repository, err)
	}
	s.log.Debug("listed local images", "repository", s.repository, "count", len(images))
	return images, nil
}

// Preflight checks that the container engine answers before a publish run.
func (s *Service) Preflight(ctx context.Context) error {
	if err := s.runtime.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDaemonUnreachable, err)
	}
	return nil
}
