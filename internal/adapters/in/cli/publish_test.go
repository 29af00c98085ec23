package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostpage/internal/boundaries/in/mocks"
	"github.com/bnema/hostpage/internal/config"
	"github.com/bnema/hostpage/internal/domain"
)

func testSteps() []domain.Step {
	steps := make([]domain.Step, 0, 7)
	for _, kind := range domain.StepKinds() {
		steps = append(steps, domain.Step{
			Kind:    kind,
			Command: domain.Command{Name: "echo", Args: []string{string(kind)}},
		})
	}
	return steps
}

func testReport(steps []domain.Step, failing map[domain.StepKind]error) *domain.PublishReport {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	report := &domain.PublishReport{RunID: "run-1", Started: started, Finished: started.Add(3 * time.Second)}
	for _, step := range steps {
		report.Results = append(report.Results, domain.StepResult{
			Kind:     step.Kind,
			Command:  step.Command.String(),
			Err:      failing[step.Kind],
			Duration: 100 * time.Millisecond,
		})
	}
	return report
}

func TestRunPublish_DryRunPrintsPlanOnly(t *testing.T) {
	steps := testSteps()
	svc := &mocks.MockPublishService{}
	images := &mocks.MockImageService{}
	svc.On("Plan").Return(steps)

	var out bytes.Buffer
	err := runPublish(context.Background(), svc, images, publishOptions{DryRun: true}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Publish plan")
	for _, step := range steps {
		assert.Contains(t, text, step.Command.String())
	}
	assert.Contains(t, text, "Dry run")
	svc.AssertNotCalled(t, "Publish", mock.Anything)
	images.AssertNotCalled(t, "Preflight", mock.Anything)
}

func TestRunPublish_AllStepsSucceed(t *testing.T) {
	steps := testSteps()
	svc := &mocks.MockPublishService{}
	images := &mocks.MockImageService{}
	svc.On("Plan").Return(steps)
	svc.On("Publish", mock.Anything).Return(testReport(steps, nil), nil)
	images.On("Preflight", mock.Anything).Return(nil)

	var out bytes.Buffer
	err := runPublish(context.Background(), svc, images, publishOptions{}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "✓")
	assert.NotContains(t, text, "✗")
	assert.Contains(t, text, "Run run-1: 7/7 steps succeeded")
	svc.AssertExpectations(t)
	images.AssertExpectations(t)
}

func TestRunPublish_FailedStepsReturnError(t *testing.T) {
	steps := testSteps()
	failing := map[domain.StepKind]error{
		domain.StepLogin: errors.New("exit status 1"),
		domain.StepPush:  errors.New("denied"),
	}
	report := testReport(steps, failing)

	svc := &mocks.MockPublishService{}
	images := &mocks.MockImageService{}
	svc.On("Plan").Return(steps)
	svc.On("Publish", mock.Anything).Return(report, report.Err())
	images.On("Preflight", mock.Anything).Return(nil)

	var out bytes.Buffer
	err := runPublish(context.Background(), svc, images, publishOptions{}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStepFailed)

	text := out.String()
	assert.Contains(t, text, "✗")
	assert.Contains(t, text, "denied")
	assert.Contains(t, text, "5/7 steps succeeded")
}

func TestRunPublish_PreflightFailureOnlyWarns(t *testing.T) {
	steps := testSteps()
	svc := &mocks.MockPublishService{}
	images := &mocks.MockImageService{}
	svc.On("Plan").Return(steps)
	svc.On("Publish", mock.Anything).Return(testReport(steps, nil), nil)
	images.On("Preflight", mock.Anything).Return(domain.ErrDaemonUnreachable)

	var out bytes.Buffer
	err := runPublish(context.Background(), svc, images, publishOptions{}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Docker daemon check failed, continuing")
	svc.AssertCalled(t, "Publish", mock.Anything)
}

func TestRunPublish_SkipPreflight(t *testing.T) {
	steps := testSteps()
	svc := &mocks.MockPublishService{}
	images := &mocks.MockImageService{}
	svc.On("Plan").Return(steps)
	svc.On("Publish", mock.Anything).Return(testReport(steps, nil), nil)

	var out bytes.Buffer
	err := runPublish(context.Background(), svc, images, publishOptions{SkipPreflight: true}, &out)
	require.NoError(t, err)
	images.AssertNotCalled(t, "Preflight", mock.Anything)
}

func TestRunPublish_CanceledListsSkippedSteps(t *testing.T) {
	steps := testSteps()
	report := testReport(steps[:3], nil)

	svc := &mocks.MockPublishService{}
	images := &mocks.MockImageService{}
	svc.On("Plan").Return(steps)
	svc.On("Publish", mock.Anything).Return(report, domain.ErrPublishCanceled)
	images.On("Preflight", mock.Anything).Return(nil)

	var out bytes.Buffer
	err := runPublish(context.Background(), svc, images, publishOptions{}, &out)
	assert.ErrorIs(t, err, domain.ErrPublishCanceled)

	text := out.String()
	assert.Contains(t, text, "tag")
	assert.Contains(t, text, "skipped")
	assert.Contains(t, text, "3/7 steps succeeded")
}

func TestRunPublish_NoReport(t *testing.T) {
	svc := &mocks.MockPublishService{}
	images := &mocks.MockImageService{}
	svc.On("Plan").Return(testSteps())
	svc.On("Publish", mock.Anything).Return(nil, domain.ErrInvalidTarget)
	images.On("Preflight", mock.Anything).Return(nil)

	var out bytes.Buffer
	err := runPublish(context.Background(), svc, images, publishOptions{}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	assert.Contains(t, err.Error(), "publish failed")
}

func TestApplyPublishFlags_OnlyChangedFlags(t *testing.T) {
	cmd := newPublishCmd(&rootOptions{})
	require.NoError(t, cmd.ParseFlags([]string{"--tag", "v2", "--sudo", "-p", "8080:3000", "-p", "9090:9090"}))

	cfg := config.Default()
	var opts publishOptions
	opts.Tag, _ = cmd.Flags().GetString("tag")
	opts.Sudo, _ = cmd.Flags().GetBool("sudo")
	opts.RunPorts, _ = cmd.Flags().GetStringSlice("publish-port")

	applyPublishFlags(cmd.Flags(), cfg, opts)

	assert.Equal(t, "v2", cfg.Publish.Tag)
	assert.True(t, cfg.Publish.Sudo)
	assert.Equal(t, []string{"8080:3000", "9090:9090"}, cfg.Publish.RunPorts)
	assert.Equal(t, "ap-southeast-1", cfg.Publish.Region)
	assert.Equal(t, "next-app", cfg.Publish.Repository)
}

func TestApplyPublishFlags_NoFlagsKeepsConfig(t *testing.T) {
	flags := pflag.NewFlagSet("publish", pflag.ContinueOnError)
	flags.String("region", "", "")

	cfg := config.Default()
	cfg.Publish.Region = "eu-west-1"
	applyPublishFlags(flags, cfg, publishOptions{Region: "ignored"})

	assert.Equal(t, "eu-west-1", cfg.Publish.Region)
}
