package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bnema/hostpage/internal/boundaries/in"
	"github.com/bnema/hostpage/internal/config"
	"github.com/bnema/hostpage/internal/domain"
)

type publishOptions struct {
	DryRun        bool
	SkipPreflight bool
	Region        string
	Account       string
	Repository    string
	Tag           string
	Dockerfile    string
	LoginMode     string
	RunPorts      []string
	Sudo          bool
}

func newPublishCmd(root *rootOptions) *cobra.Command {
	var opts publishOptions

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build the image, push it to ECR and run it",
		Long: `Runs the publish sequence in order: prune, build, login, tag,
create-repository, push, run.

Every step runs even when an earlier one fails. The command exits non-zero
when any step failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			applyPublishFlags(cmd.Flags(), cfg, opts)
			if err := cfg.PublishTarget().Validate(); err != nil {
				return err
			}

			kernel, err := newKernel(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer kernel.Close()

			return runPublish(cmd.Context(), kernel.Publish(), kernel.Images(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the planned commands without running them")
	cmd.Flags().BoolVar(&opts.SkipPreflight, "skip-preflight", false, "Do not ping the Docker daemon before publishing")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region of the registry")
	cmd.Flags().StringVar(&opts.Account, "account", "", "AWS account ID owning the registry")
	cmd.Flags().StringVar(&opts.Repository, "repository", "", "Image repository name")
	cmd.Flags().StringVar(&opts.Tag, "tag", "", "Image tag")
	cmd.Flags().StringVarP(&opts.Dockerfile, "file", "f", "", "Dockerfile path passed to docker build")
	cmd.Flags().StringVar(&opts.LoginMode, "login-mode", "", "Registry login mode (cli or sdk)")
	cmd.Flags().StringSliceVarP(&opts.RunPorts, "publish-port", "p", nil, "Port mapping for docker run (repeatable)")
	cmd.Flags().BoolVar(&opts.Sudo, "sudo", false, "Run docker commands through sudo")

	return cmd
}

// applyPublishFlags overrides cfg with the flags set on the command line.
func applyPublishFlags(flags *pflag.FlagSet, cfg *config.Config, opts publishOptions) {
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("region", &cfg.Publish.Region, opts.Region)
	set("account", &cfg.Publish.Account, opts.Account)
	set("repository", &cfg.Publish.Repository, opts.Repository)
	set("tag", &cfg.Publish.Tag, opts.Tag)
	set("file", &cfg.Publish.Dockerfile, opts.Dockerfile)
	set("login-mode", &cfg.Publish.LoginMode, opts.LoginMode)

	if flags.Changed("publish-port") {
		cfg.Publish.RunPorts = opts.RunPorts
	}
	if flags.Changed("sudo") {
		cfg.Publish.Sudo = opts.Sudo
	}
}

func runPublish(ctx context.Context, svc in.PublishService, images in.ImageService, opts publishOptions, out io.Writer) error {
	steps := svc.Plan()

	if err := cliWriteLine(out, cliRenderTitle("Publish plan")); err != nil {
		return err
	}
	if err := cliWriteLine(out, renderPlan(steps)); err != nil {
		return err
	}

	if opts.DryRun {
		return cliWriteLine(out, cliRenderWarning("Dry run: no command executed"))
	}

	if !opts.SkipPreflight {
		if err := images.Preflight(ctx); err != nil {
			if werr := cliWriteLine(out, cliRenderWarning(fmt.Sprintf("Docker daemon check failed, continuing: %v", err))); werr != nil {
				return werr
			}
		}
	}

	report, err := svc.Publish(ctx)
	if report == nil {
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}
		return nil
	}

	if werr := renderReport(out, steps, report); werr != nil {
		return werr
	}
	return err
}

func renderPlan(steps []domain.Step) string {
	rows := make([][]string, 0, len(steps))
	for i, step := range steps {
		rows = append(rows, []string{strconv.Itoa(i + 1), string(step.Kind), step.Command.String()})
	}
	return cliRenderTable([]string{"#", "STEP", "COMMAND"}, rows)
}

func renderReport(out io.Writer, steps []domain.Step, report *domain.PublishReport) error {
	if err := cliWriteLine(out, ""); err != nil {
		return err
	}
	for _, res := range report.Results {
		line := fmt.Sprintf("%-18s %s", res.Kind, res.Duration.Round(time.Millisecond))
		if res.OK() {
			line = cliRenderSuccess(line)
		} else {
			line = cliRenderFailure(fmt.Sprintf("%s  %v", line, res.Err))
		}
		if err := cliWriteLine(out, line); err != nil {
			return err
		}
	}
	for _, step := range steps[min(len(report.Results), len(steps)):] {
		if err := cliWriteLine(out, cliRenderMuted(fmt.Sprintf("- %-16s skipped", step.Kind))); err != nil {
			return err
		}
	}

	if err := cliWriteLine(out, ""); err != nil {
		return err
	}
	failed := len(report.Failed())
	summary := fmt.Sprintf("Run %s: %d/%d steps succeeded in %s",
		report.RunID, len(report.Results)-failed, len(steps), report.Duration().Round(time.Millisecond))
	if failed > 0 || len(report.Results) < len(steps) {
		return cliWriteLine(out, cliRenderWarning(summary))
	}
	return cliWriteLine(out, cliRenderInfo(summary))
}
