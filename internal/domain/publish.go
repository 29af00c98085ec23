package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/docker/go-connections/nat"
)

// StepKind identifies one stage of the image publish sequence.
type StepKind string

const (
	StepPrune            StepKind = "prune"
	StepBuild            StepKind = "build"
	StepLogin            StepKind = "login"
	StepTag              StepKind = "tag"
	StepCreateRepository StepKind = "create-repository"
	StepPush             StepKind = "push"
	StepRun              StepKind = "run"
)

// StepKinds returns the publish stages in execution order.
func StepKinds() []StepKind {
	return []StepKind{
		StepPrune,
		StepBuild,
		StepLogin,
		StepTag,
		StepCreateRepository,
		StepPush,
		StepRun,
	}
}

// LoginMode selects where the registry password comes from.
type LoginMode string

const (
	// LoginModeCLI pipes `aws ecr get-login-password` into docker login.
	LoginModeCLI LoginMode = "cli"
	// LoginModeSDK fetches the ECR authorization token through the AWS SDK.
	LoginModeSDK LoginMode = "sdk"
)

var accountPattern = regexp.MustCompile(`^[0-9]{12}$`)

// PublishTarget describes the image to build and the registry it goes to.
type PublishTarget struct {
	Region       string
	Account      string
	Repository   string
	Tag          string
	BuildContext string
	Dockerfile   string
	RunPorts     []string
	LoginMode    LoginMode
	Sudo         bool
}

// RegistryHost returns the ECR registry hostname for the target account and region.
func (t PublishTarget) RegistryHost() string {
	return fmt.Sprintf("%s.dkr.ecr.%s.amazonaws.com", t.Account, t.Region)
}

// LocalRef returns the image reference used for the local build.
func (t PublishTarget) LocalRef() string {
	return t.Repository + ":" + t.tag()
}

// RemoteRef returns the fully qualified registry reference.
func (t PublishTarget) RemoteRef() string {
	return t.RegistryHost() + "/" + t.LocalRef()
}

func (t PublishTarget) tag() string {
	if t.Tag == "" {
		return "latest"
	}
	return t.Tag
}

// Validate checks that the target can produce a runnable plan.
func (t PublishTarget) Validate() error {
	var errs []error
	if strings.TrimSpace(t.Region) == "" {
		errs = append(errs, errors.New("region is required"))
	}
	if !accountPattern.MatchString(t.Account) {
		errs = append(errs, fmt.Errorf("account %q must be a 12 digit AWS account id", t.Account))
	}
	if strings.TrimSpace(t.Repository) == "" {
		errs = append(errs, errors.New("repository is required"))
	}
	switch t.LoginMode {
	case "", LoginModeCLI, LoginModeSDK:
	default:
		errs = append(errs, fmt.Errorf("login mode %q must be %q or %q", t.LoginMode, LoginModeCLI, LoginModeSDK))
	}
	for _, p := range t.RunPorts {
		if _, err := nat.ParsePortSpec(p); err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %v", ErrInvalidPort, p, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, errors.Join(errs...))
	}
	return nil
}

// InputSource produces data piped into a command's stdin.
type InputSource interface {
	Open(ctx context.Context) (io.Reader, error)
	String() string
}

// Command is a single external program invocation.
// Its stdin is fed either by the stdout of PipeFrom or by Input; at most one
// of the two is set.
type Command struct {
	Name     string
	Args     []string
	PipeFrom *Command
	Input    InputSource
}

// String renders the command line the way a shell user would type it.
func (c Command) String() string {
	line := strings.Join(append([]string{c.Name}, c.Args...), " ")
	switch {
	case c.PipeFrom != nil:
		return c.PipeFrom.String() + " | " + line
	case c.Input != nil:
		return c.Input.String() + " | " + line
	}
	return line
}

// Step pairs a publish stage with the command that performs it.
type Step struct {
	Kind    StepKind
	Command Command
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Kind     StepKind
	Command  string
	Err      error
	Duration time.Duration
}

// OK reports whether the step exited successfully.
func (r StepResult) OK() bool {
	return r.Err == nil
}

// PublishReport summarizes a publish run.
type PublishReport struct {
	RunID    string
	Target   PublishTarget
	Results  []StepResult
	Started  time.Time
	Finished time.Time
}

// Failed returns the results of steps that did not succeed.
func (r *PublishReport) Failed() []StepResult {
	var failed []StepResult
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins every step failure, or returns nil when all steps succeeded.
func (r *PublishReport) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failed))
	for _, res := range failed {
		errs = append(errs, fmt.Errorf("%w: %s: %w", ErrStepFailed, res.Kind, res.Err))
	}
	return errors.Join(errs...)
}

// Duration returns the wall time of the whole run.
func (r *PublishReport) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
