// Package host implements the host description use case.
package host

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/hostpage/internal/boundaries/out"
	"github.com/bnema/hostpage/internal/domain"
)

// Service implements the HostService interface.
type Service struct {
	resolver out.HostnameResolver
	log      *log.Logger
	now      func() time.Time
}

// NewService creates a new host service.
func NewService(resolver out.HostnameResolver, logger *log.Logger) *Service {
	return &Service{
		resolver: resolver,
		log:      logger,
		now:      time.Now,
	}
}

// Describe looks up the hostname on every call; nothing is cached.
func (s *Service) Describe(ctx context.Context) (*domain.HostInfo, error) {
	name, err := s.resolver.Hostname()
	if err != nil {
		s.log.Error("hostname lookup failed", "usecase", "Describe", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrHostnameLookup, err)
	}

	return &domain.HostInfo{
		Hostname:    name,
		RequestedAt: s.now(),
	}, nil
}
