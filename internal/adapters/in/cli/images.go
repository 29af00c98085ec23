package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/bnema/hostpage/internal/boundaries/in"
)

func newImagesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "List local images of the configured repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.PublishTarget().Validate(); err != nil {
				return err
			}

			kernel, err := newKernel(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer kernel.Close()

			return runImagesList(cmd.Context(), kernel.Images(), cmd.OutOrStdout())
		},
	}
}

func runImagesList(ctx context.Context, svc in.ImageService, out io.Writer) error {
	images, err := svc.ListLocal(ctx)
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}

	if len(images) == 0 {
		return cliWriteLine(out, cliRenderMuted("No images found"))
	}

	if err := cliWriteLine(out, cliRenderTitle("Images")); err != nil {
		return err
	}

	rows := make([][]string, 0, len(images))
	for _, img := range images {
		tags := "<none>"
		if len(img.Tags) > 0 {
			tags = strings.Join(img.Tags, ", ")
		}
		rows = append(rows, []string{
			tags,
			img.ShortID(),
			units.HumanSize(float64(img.Size)),
			formatImageCreatedAt(img.Created),
		})
	}

	if err := cliWriteLine(out, cliRenderTable([]string{"TAGS", "IMAGE ID", "SIZE", "CREATED"}, rows)); err != nil {
		return err
	}
	return cliWritef(out, "\nTotal images: %d\n", len(images))
}

func formatImageCreatedAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
