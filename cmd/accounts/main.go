package main

import (
	"context"
	"log/slog"
	"os"

	"accounts/config"
	"accounts/internal/delivery"
	deliveryhttp "accounts/internal/delivery/http"
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/infra/auth"
	logs "accounts/internal/infra/log"
	"accounts/internal/infra/metrics"
	"accounts/internal/infra/persistence/memory"
	"accounts/internal/infra/persistence/postgres"
	"accounts/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(options()).Run()
}

func options() fx.Option {
	return fx.Options(
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
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		fx.Annotate(
			metrics.Handler,
			fx.ResultTags(`name:"metrics"`),
		),
	)
}

type userStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type userStore struct {
	fx.Out

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
}

// newUserStore builds the repositories for the configured storage driver.
func newUserStore(params userStoreParams) (userStore, error) {
	if params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Warn("Using in-memory user store, accounts do not survive a restart")
		store := memory.NewStore()

		return userStore{
			UserRepo:  memory.NewUserRepository(store),
			TxManager: memory.NewTransactionManager(store),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lc,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return userStore{}, err
	}

	return userStore{
		UserRepo:  postgres.NewUserRepository(db),
		TxManager: postgres.NewTransactionManager(db),
	}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			fx.Annotate(
				metrics.NewCollector,
				fx.As(new(service.AuthMetrics)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
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
			handler.NewUserHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
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
