// Package app wires configuration, adapters and use cases together.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bnema/hostpage/internal/adapters/out/docker"
	"github.com/bnema/hostpage/internal/adapters/out/ecr"
	"github.com/bnema/hostpage/internal/adapters/out/logwriter"
	"github.com/bnema/hostpage/internal/adapters/out/shell"
	"github.com/bnema/hostpage/internal/adapters/out/system"
	"github.com/bnema/hostpage/internal/boundaries/in"
	"github.com/bnema/hostpage/internal/boundaries/out"
	"github.com/bnema/hostpage/internal/config"
	"github.com/bnema/hostpage/internal/domain"
	hostusecase "github.com/bnema/hostpage/internal/usecase/host"
	imagesusecase "github.com/bnema/hostpage/internal/usecase/images"
	publishusecase "github.com/bnema/hostpage/internal/usecase/publish"
)

// Rotation settings for the publish log file.
const (
	publishLogMaxSize    = 10 // megabytes
	publishLogMaxBackups = 3
	publishLogMaxAge     = 28 // days
)

// Kernel provides in-process service access for the CLI commands.
//
// It does not start the HTTP server; see Serve.
type Kernel struct {
	cfg *config.Config
	log *log.Logger

	publishSvc in.PublishService
	hostSvc    in.HostService
	imagesSvc  in.ImageService

	closers []func() error
}

// NewKernel builds every service from cfg. The registry password provider is
// only created for domain.LoginModeSDK, so the AWS SDK never loads
// credentials in the default CLI login mode.
func NewKernel(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Kernel, error) {
	k := &Kernel{cfg: cfg, log: logger}

	runtime, err := docker.NewRuntime(cfg.Docker.Host, logger)
	if err != nil {
		return nil, err
	}
	k.closers = append(k.closers, runtime.Close)

	output, err := logwriter.New(logger, logwriter.Config{
		File:       cfg.Publish.LogFile,
		MaxSize:    publishLogMaxSize,
		MaxBackups: publishLogMaxBackups,
		MaxAge:     publishLogMaxAge,
	})
	if err != nil {
		_ = k.Close()
		return nil, err
	}
	k.closers = append(k.closers, output.Close)

	target := cfg.PublishTarget()
	var passwords out.RegistryPasswordProvider
	if target.LoginMode == domain.LoginModeSDK {
		provider, err := ecr.NewTokenProvider(ctx, target.Region)
		if err != nil {
			_ = k.Close()
			return nil, fmt.Errorf("failed to create ECR token provider: %w", err)
		}
		passwords = provider
	}

	k.publishSvc = publishusecase.NewService(target, shell.NewRunner(output, logger), passwords, logger)
	k.hostSvc = hostusecase.NewService(system.NewHostname(), logger)
	k.imagesSvc = imagesusecase.NewService(runtime, target.Repository, logger)

	logger.Debug("kernel ready",
		"region", target.Region,
		"repository", target.Repository,
		"loginMode", target.LoginMode,
	)
	return k, nil
}

// Close releases the Docker client and the publish log file.
func (k *Kernel) Close() error {
	if k == nil {
		return nil
	}
	var errs []error
	for i := len(k.closers) - 1; i >= 0; i-- {
		if err := k.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	k.closers = nil
	return errors.Join(errs...)
}

func (k *Kernel) Config() *config.Config { return k.cfg }

func (k *Kernel) Publish() in.PublishService { return k.publishSvc }

func (k *Kernel) Host() in.HostService { return k.hostSvc }

func (k *Kernel) Images() in.ImageService { return k.imagesSvc }
