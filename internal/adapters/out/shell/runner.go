// Package shell implements the command runner adapter on top of os/exec.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/hostpage/internal/adapters/out/logwriter"
	"github.com/bnema/hostpage/internal/domain"
)

// waitDelay bounds how long Wait blocks on output pipes held open by
// grandchildren after the context kills the child.
const waitDelay = 2 * time.Second

// Runner implements the CommandRunner interface.
type Runner struct {
	output *logwriter.LogWriter
	log    *log.Logger
}

// NewRunner creates a runner that forwards child output to output.
func NewRunner(output *logwriter.LogWriter, logger *log.Logger) *Runner {
	return &Runner{
		output: output,
		log:    logger,
	}
}

// Run executes cmd and waits for it to exit.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	if cmd.PipeFrom != nil && cmd.Input != nil {
		return fmt.Errorf("command %s has both a pipe and an input source", cmd.Name)
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.WaitDelay = waitDelay
	stdout := r.output.Stream(cmd.Name, "stdout")
	stderr := r.output.Stream(cmd.Name, "stderr")
	defer stdout.Close()
	defer stderr.Close()
	c.Stdout = stdout
	c.Stderr = stderr

	switch {
	case cmd.PipeFrom != nil:
		return r.runPipeline(ctx, *cmd.PipeFrom, c)
	case cmd.Input != nil:
		in, err := cmd.Input.Open(ctx)
		if err != nil {
			return err
		}
		c.Stdin = in
	}

	r.log.Debug("exec", "cmd", cmd.Name, "args", len(cmd.Args))
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// runPipeline connects src's stdout to dst's stdin, like `src | dst`.
func (r *Runner) runPipeline(ctx context.Context, src domain.Command, dst *exec.Cmd) error {
	s := exec.CommandContext(ctx, src.Name, src.Args...)
	s.WaitDelay = waitDelay
	srcErr := r.output.Stream(src.Name, "stderr")
	defer srcErr.Close()
	s.Stderr = srcErr

	pipe, err := s.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open pipe from %s: %w", src.Name, err)
	}
	dst.Stdin = pipe

	if err := s.Start(); err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}
	if err := dst.Start(); err != nil {
		_ = pipe.Close()
		_ = s.Wait()
		return fmt.Errorf("%s: %w", dst.Path, err)
	}
	// dst owns the read end now. Closing ours lets the producer get SIGPIPE
	// when dst exits without draining its stdin.
	_ = pipe.Close()

	dstErr := dst.Wait()
	srcWaitErr := s.Wait()

	var errs []error
	if srcWaitErr != nil {
		errs = append(errs, fmt.Errorf("%s: %w", src.Name, srcWaitErr))
	}
	if dstErr != nil {
		errs = append(errs, fmt.Errorf("%s: %w", dst.Args[0], dstErr))
	}
	return errors.Join(errs...)
}
