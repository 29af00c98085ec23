package publish

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/hostpage/internal/boundaries/out"
	"github.com/bnema/hostpage/internal/domain"
)

const defaultBuildContext = "."

// BuildPlan returns the seven publish steps for target, in execution order.
// passwords is only consulted for domain.LoginModeSDK.
func BuildPlan(target domain.PublishTarget, passwords out.RegistryPasswordProvider) []domain.Step {
	local := target.LocalRef()
	remote := target.RemoteRef()

	return []domain.Step{
		{Kind: domain.StepPrune, Command: docker(target, "system", "prune", "-a", "-f")},
		{Kind: domain.StepBuild, Command: buildCommand(target)},
		{Kind: domain.StepLogin, Command: loginCommand(target, passwords)},
		{Kind: domain.StepTag, Command: docker(target, "tag", local, remote)},
		{Kind: domain.StepCreateRepository, Command: domain.Command{
			Name: "aws",
			Args: []string{
				"ecr", "create-repository",
				"--registry-id", target.Account,
				"--repository-name", target.Repository,
				"--region", target.Region,
			},
		}},
		{Kind: domain.StepPush, Command: docker(target, "push", remote)},
		{Kind: domain.StepRun, Command: runCommand(target)},
	}
}

func docker(target domain.PublishTarget, args ...string) domain.Command {
	if target.Sudo {
		return domain.Command{Name: "sudo", Args: append([]string{"docker"}, args...)}
	}
	return domain.Command{Name: "docker", Args: args}
}

func buildCommand(target domain.PublishTarget) domain.Command {
	args := []string{"build", "-t", target.LocalRef()}
	if target.Dockerfile != "" {
		args = append(args, "-f", target.Dockerfile)
	}
	buildContext := target.BuildContext
	if buildContext == "" {
		buildContext = defaultBuildContext
	}
	return docker(target, append(args, buildContext)...)
}

func loginCommand(target domain.PublishTarget, passwords out.RegistryPasswordProvider) domain.Command {
	cmd := docker(target, "login", "--username", "AWS", "--password-stdin", target.RegistryHost())
	if target.LoginMode == domain.LoginModeSDK && passwords != nil {
		cmd.Input = passwordInput{provider: passwords, registry: target.RegistryHost()}
		return cmd
	}
	cmd.PipeFrom = &domain.Command{
		Name: "aws",
		Args: []string{"ecr", "get-login-password", "--region", target.Region},
	}
	return cmd
}

func runCommand(target domain.PublishTarget) domain.Command {
	args := []string{"run", "-d"}
	for _, p := range target.RunPorts {
		args = append(args, "-p", p)
	}
	return docker(target, append(args, target.LocalRef())...)
}

// passwordInput feeds a registry password into docker login's stdin.
type passwordInput struct {
	provider out.RegistryPasswordProvider
	registry string
}

func (p passwordInput) Open(ctx context.Context) (io.Reader, error) {
	password, err := p.provider.Password(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get password for %s: %w", p.registry, err)
	}
	return strings.NewReader(password), nil
}

func (p passwordInput) String() string {
	return "<ecr authorization token>"
}
