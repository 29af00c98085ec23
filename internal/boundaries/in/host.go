package in

import (
	"context"

	"github.com/bnema/hostpage/internal/domain"
)

// HostService defines the contract for describing the serving machine.
type HostService interface {
	// Describe looks up the hostname at call time.
	Describe(ctx context.Context) (*domain.HostInfo, error)
}
