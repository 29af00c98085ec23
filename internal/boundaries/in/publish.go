// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/hostpage/internal/domain"
)

// PublishService defines the contract for building and publishing an image.
type PublishService interface {
	// Plan returns the ordered steps Publish would execute.
	Plan() []domain.Step

	// Publish executes every planned step in order, regardless of earlier
	// failures, and returns the report with the joined step errors.
	Publish(ctx context.Context) (*domain.PublishReport, error)
}
