package out

import (
	"context"

	"github.com/bnema/hostpage/internal/domain"
)

// CommandRunner executes external commands.
// Run blocks until the command exits and returns a non-nil error for a
// non-zero exit status or a failure to start.
type CommandRunner interface {
	Run(ctx context.Context, cmd domain.Command) error
}
