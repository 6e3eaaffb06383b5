package main

import (
	"context"
	"log/slog"
	"os"

	"familytree/config"
	"familytree/internal/delivery"
	"familytree/internal/delivery/api"
	"familytree/internal/delivery/api/middleware"
	"familytree/internal/delivery/api/router/handler"
	"familytree/internal/infra/auth"
	"familytree/internal/infra/firebase"
	"familytree/internal/infra/idgen"
	logs "familytree/internal/infra/log"
	"familytree/internal/infra/metrics"
	"familytree/internal/infra/notification"
	"familytree/internal/infra/persistence"
	"familytree/internal/infra/pubsub"
	"familytree/internal/infra/qrcode"
	"familytree/internal/infra/suggestion"
	"familytree/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
		firebase.NewApp,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			idgen.NewFromConfig,
			metrics.NewGraphMetrics,
			pubsub.NewEventPublisher,
			notification.NewNotificationService,
			auth.NewTokenVerifier,
			qrcode.NewFromConfig,
			suggestion.NewOracle,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPersonService,
			impl.NewFamilyService,
			impl.NewSuggestionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPeopleHandler,
			handler.NewAdminHandler,
			handler.NewSuggestionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
