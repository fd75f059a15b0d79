package main

import (
	"context"
	"log/slog"
	"os"

	"freeport/config"
	"freeport/internal/delivery"
	"freeport/internal/delivery/http"
	"freeport/internal/delivery/http/router/handler"
	"freeport/internal/delivery/worker"
	"freeport/internal/domain/repository"
	"freeport/internal/domain/service"
	"freeport/internal/infra/content"
	logs "freeport/internal/infra/log"
	"freeport/internal/infra/memory"
	"freeport/internal/infra/persistence/postgres"
	"freeport/internal/infra/pubsub"
	"freeport/internal/infra/random"
	"freeport/internal/usecase"
	"freeport/internal/usecase/impl"

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
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			random.New,
		),
		content.Module,
		pubsub.Module,
		postgres.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewListingRepository,
			memory.NewTransactionRepository,
			memory.NewPaymentRepository,
			memory.NewSubscriptionRepository,
			memory.NewCampaignRepository,
			newRevenueRepository,
			memory.NewJobRepository,
			memory.NewBlackMarketRepository,
			memory.NewTradeRouteRepository,
			memory.NewSmugglingRepository,
		),
	)
}

// newRevenueRepository seeds the revenue store with the configured
// historical baseline so forecasts work on a fresh process.
func newRevenueRepository(cfg *config.Config) repository.RevenueRepository {
	return memory.NewRevenueRepository(cfg.Revenue.Baseline)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRevenueService,
			newRevenueRecorder,
			impl.NewListingService,
			impl.NewPaymentService,
			impl.NewSubscriptionService,
			impl.NewAcquisitionService,
			impl.NewCargoService,
			impl.NewJobService,
			impl.NewBlackMarketService,
			impl.NewTradeRouteService,
			impl.NewSmugglingService,
		),
	)
}

// newRevenueRecorder exposes the revenue use case to the stores that
// push amounts into it.
func newRevenueRecorder(revenueUC usecase.RevenueUsecase) service.RevenueRecorder {
	return revenueUC
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewListingHandler,
			handler.NewPaymentHandler,
			handler.NewSubscriptionHandler,
			handler.NewAcquisitionHandler,
			handler.NewRevenueHandler,
			handler.NewWorldHandler,
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
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start delivery", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
