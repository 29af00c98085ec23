// Package docker implements the container runtime adapter using Docker API.
package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"

	"github.com/bnema/hostpage/internal/domain"
)

// Runtime implements the ContainerRuntime interface using Docker API.
type Runtime struct {
	client *client.Client
	log    *log.Logger
}

// NewRuntime creates a new Docker runtime instance. An empty host uses the
// DOCKER_HOST environment or the default socket.
func NewRuntime(host string, logger *log.Logger) (*Runtime, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return NewRuntimeWithClient(cli, logger), nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client, logger *log.Logger) *Runtime {
	return &Runtime{
		client: cli,
		log:    logger,
	}
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	if _, err := r.client.Ping(ctx); err != nil {
		return fmt.Errorf("Docker ping failed: %w", err)
	}
	r.log.Debug("Docker daemon reachable", "host", r.client.DaemonHost())
	return nil
}

// ListImages lists local images whose reference matches the given repository.
func (r *Runtime) ListImages(ctx context.Context, reference string) ([]domain.LocalImage, error) {
	opts := image.ListOptions{}
	if reference != "" {
		opts.Filters = filters.NewArgs(filters.Arg("reference", reference))
	}

	summaries, err := r.client.ImageList(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	images := make([]domain.LocalImage, 0, len(summaries))
	for _, s := range summaries {
		var tags []string
		for _, tag := range s.RepoTags {
			if tag != "<none>:<none>" {
				tags = append(tags, tag)
			}
		}
		images = append(images, domain.LocalImage{
			ID:      s.ID,
			Tags:    tags,
			Size:    s.Size,
			Created: time.Unix(s.Created, 0),
		})
	}

	return images, nil
}

// Close releases the underlying client transport.
func (r *Runtime) Close() error {
	return r.client.Close()
}
