package main

import (
	"context"
	"log/slog"
	"os"

	"panel/config"
	"panel/internal/delivery"
	"panel/internal/delivery/http"
	"panel/internal/delivery/http/middleware"
	"panel/internal/delivery/http/router/handler"
	"panel/internal/infra/auth"
	"panel/internal/infra/clock"
	logs "panel/internal/infra/log"
	"panel/internal/infra/mail"
	"panel/internal/infra/persistence/postgres"
	"panel/internal/infra/storage"
	"panel/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewManagedUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.New,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewPasswordPolicy,
			mail.NewSESMailer,
			mail.NewSecurityNotifier,
			storage.NewS3Storage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewUserAdminService,
			impl.NewExportService,
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
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewUserHandler,
			handler.NewExportHandler,
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
