package main

import (
	"context"
	"log/slog"

	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/middleware"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/router/handler"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/auth"
	logs "github.com/calvin-79/food-delivery-tracking/internal/infra/log"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/pubsub"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/qrcode"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/validator"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
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
			persistence.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewFromConfig,
			fx.Annotate(
				validator.New,
				fx.As(fx.Self()),
				fx.As(new(service.PayloadValidator)),
			),
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewClientService,
			impl.NewItemService,
			impl.NewOrderService,
			impl.NewReviewService,
			impl.NewIdentityService,
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
			handler.NewClientHandler,
			handler.NewItemHandler,
			handler.NewOrderHandler,
			handler.NewReviewHandler,
			handler.NewTestHandler,
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

// startServer runs every delivery once the store is open; a failing server stops the app.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
