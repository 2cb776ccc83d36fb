package cmd

import (
	"context"
	"fmt"
	"time"

	reportadapter "github.com/bnema/bank-accounts-cli/internal/adapters/render/report"
	tomlrepo "github.com/bnema/bank-accounts-cli/internal/adapters/repo/toml"
	"github.com/bnema/bank-accounts-cli/internal/application"
	"github.com/bnema/bank-accounts-cli/internal/config"
	"github.com/bnema/bank-accounts-cli/internal/logging"
	"github.com/bnema/bank-accounts-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	viper          *viper.Viper
	config         config.Config
	logger         *zap.Logger
	clock          ports.Clock
	reportRenderer func(application.Report, reportadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	return &app{
		viper:          v,
		config:         cfg,
		logger:         logger,
		clock:          ports.SystemClock{},
		reportRenderer: reportadapter.Render,
	}, nil
}

// newService builds a fresh ledger and opens the seed accounts. A non-empty
// seedPath overrides ledger.seed_path for this invocation.
func (a *app) newService(ctx context.Context, seedPath string) (*application.Service, error) {
	if seedPath != "" {
		a.viper.Set(config.SeedPathKey, seedPath)
	}

	repo, err := tomlrepo.NewRepository(a.viper, &a.config.Schedule)
	if err != nil {
		return nil, fmt.Errorf("wire seed repository: %w", err)
	}

	service := application.NewService(a.config.Schedule, a.clock, a.logger)
	if _, err := service.Seed(ctx, repo); err != nil {
		return nil, err
	}

	return service, nil
}

func (a *app) renderOptions() reportadapter.RenderOptions {
	return reportadapter.RenderOptions{Now: a.now()}
}

func (a *app) now() time.Time {
	return a.clock.Now()
}
