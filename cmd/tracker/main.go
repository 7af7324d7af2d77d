package main

import (
	"context"
	"log/slog"
	"os"

	"tracker/config"
	"tracker/internal/delivery"
	"tracker/internal/delivery/http"
	"tracker/internal/delivery/http/middleware"
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/auth"
	"tracker/internal/infra/fixture"
	logs "tracker/internal/infra/log"
	"tracker/internal/infra/persistence/memory"
	"tracker/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCandidateRepository,
			newProcessedEventRepository,
		),
	)
}

// newCandidateRepository loads and validates the fixture files, then seeds
// the in-memory store. A malformed fixture aborts startup before the server
// accepts traffic.
func newCandidateRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.CandidateRepository, error) {
	stageMap, err := fixture.LoadStageMap(cfg.Fixtures.StatusMapPath)
	if err != nil {
		return nil, errors.Wrap(err, "fixture.LoadStageMap")
	}

	candidates, err := fixture.LoadCandidates(cfg.Fixtures.CandidatesPath, stageMap)
	if err != nil {
		return nil, errors.Wrap(err, "fixture.LoadCandidates")
	}

	repo := memory.NewCandidateRepository()
	if err := repo.Seed(ctx, candidates); err != nil {
		return nil, errors.Wrap(err, "repo.Seed")
	}

	logger.Info("candidate store seeded",
		slog.Int("candidates", len(candidates)),
		slog.String("statusMap", cfg.Fixtures.StatusMapPath),
	)

	return repo, nil
}

func newProcessedEventRepository(cfg *config.Config) repository.ProcessedEventRepository {
	return memory.NewProcessedEventRepository(cfg.Webhook.DedupRetention)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewHMACVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStatusService,
			impl.NewTrackingService,
			impl.NewWebhookService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewSecureHeadersMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
			handler.NewTrackHandler,
			handler.NewWebhookHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
