package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"moa/config"
	"moa/internal/delivery"
	"moa/internal/delivery/http"
	"moa/internal/delivery/http/middleware"
	"moa/internal/delivery/http/router/handler"
	"moa/internal/domain/service"
	"moa/internal/infra/auth"
	"moa/internal/infra/geocode"
	logs "moa/internal/infra/log"
	"moa/internal/infra/notification"
	"moa/internal/infra/persistence/postgres"
	"moa/internal/infra/pubsub"
	"moa/internal/infra/qrcode"
	"moa/internal/infra/scheduler"
	"moa/internal/usecase"
	"moa/internal/usecase/impl"

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
			bindExpirer,
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
			postgres.NewGroupRepository,
			postgres.NewPaymentRepository,
			postgres.NewProductRepository,
			postgres.NewUserRepository,
			postgres.NewAlertRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			geocode.NewHTTPGeocoder,
			newFirebaseService,
			newQRCodeService,
			scheduler.New,
			func(s *scheduler.DeadlineScheduler) service.DeadlineScheduler { return s },
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGroupService,
			impl.NewGroupQueryService,
			impl.NewPaymentService,
			impl.NewAlertService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGroupHandler,
			handler.NewQueryHandler,
			handler.NewPaymentHandler,
			handler.NewAlertHandler,
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

// bindExpirer gives the deadline scheduler its expiry callback. The binding
// happens in an invoke to break the construction cycle between the scheduler
// and the group usecase.
func bindExpirer(sched *scheduler.DeadlineScheduler, groupUC usecase.GroupUsecase) {
	sched.BindExpirer(groupUC.ExpireGroup)
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
