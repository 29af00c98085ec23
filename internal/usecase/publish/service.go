// Package publish implements the image build and publish use case.
package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/bnema/hostpage/internal/boundaries/out"
	"github.com/bnema/hostpage/internal/domain"
)

// Service implements the PublishService interface.
type Service struct {
	target    domain.PublishTarget
	runner    out.CommandRunner
	passwords out.RegistryPasswordProvider
	log       *log.Logger
	now       func() time.Time
}

// NewService creates a new publish service.
// passwords may be nil unless target uses domain.LoginModeSDK.
func NewService(
	target domain.PublishTarget,
	runner out.CommandRunner,
	passwords out.RegistryPasswordProvider,
	logger *log.Logger,
) *Service {
	return &Service{
		target:    target,
		runner:    runner,
		passwords: passwords,
		log:       logger,
		now:       time.Now,
	}
}

// Plan returns the ordered steps Publish executes.
func (s *Service) Plan() []domain.Step {
	return BuildPlan(s.target, s.passwords)
}

// Publish runs every step of the plan strictly in order. A failing step is
// logged and recorded but never stops the sequence; only context
// cancellation does.
func (s *Service) Publish(ctx context.Context) (*domain.PublishReport, error) {
	if err := s.target.Validate(); err != nil {
		return nil, err
	}
	if s.target.LoginMode == domain.LoginModeSDK && s.passwords == nil {
		return nil, fmt.Errorf("%w: sdk login mode needs a registry password provider", domain.ErrInvalidTarget)
	}

	report := &domain.PublishReport{
		RunID:   uuid.NewString(),
		Target:  s.target,
		Started: s.now(),
	}
	log := s.log.With("usecase", "Publish", "run_id", report.RunID)
	log.Info("publishing image", "image", s.target.LocalRef(), "registry", s.target.RegistryHost())

	steps := s.Plan()
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			report.Finished = s.now()
			log.Warn("publish canceled", "next_step", step.Kind)
			return report, errors.Join(
				fmt.Errorf("%w before %s: %w", domain.ErrPublishCanceled, step.Kind, err),
				report.Err(),
			)
		}

		stepLog := log.With("step", step.Kind, "index", fmt.Sprintf("%d/%d", i+1, len(steps)))
		stepLog.Debug("running", "command", step.Command.String())

		start := s.now()
		err := s.runner.Run(ctx, step.Command)
		result := domain.StepResult{
			Kind:     step.Kind,
			Command:  step.Command.String(),
			Err:      err,
			Duration: s.now().Sub(start),
		}
		report.Results = append(report.Results, result)

		if err != nil {
			stepLog.Error("step failed, continuing", "error", err)
			continue
		}
		stepLog.Info("step done", "duration", result.Duration.Round(time.Millisecond))
	}

	report.Finished = s.now()
	if err := report.Err(); err != nil {
		log.Warn("publish finished with failures", "failed", len(report.Failed()), "total", len(report.Results))
		return report, err
	}
	log.Info("publish finished", "image", s.target.RemoteRef(), "duration", report.Duration().Round(time.Millisecond))
	return report, nil
}
