package main

import (
	"context"
	"log/slog"
	"os"

	"shamba/config"
	"shamba/internal/delivery"
	"shamba/internal/delivery/http"
	"shamba/internal/delivery/http/middleware"
	"shamba/internal/delivery/http/router/handler"
	"shamba/internal/domain/service"
	"shamba/internal/infra/backend"
	logs "shamba/internal/infra/log"
	"shamba/internal/infra/qrcode"
	"shamba/internal/infra/securestore"
	"shamba/internal/usecase"
	"shamba/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapState,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		securestore.NewSQLiteStore,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.New,
			func(a *backend.Adapter) service.Backend { return a },
			func(a *backend.Adapter) service.TokenVerifier { return a },
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(256, "M")
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewPreferenceService,
			impl.NewCartService,
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
			handler.NewAuthHandler,
			handler.NewPreferenceHandler,
			handler.NewCartHandler,
			handler.NewCatalogHandler,
			handler.NewWeatherHandler,
			handler.NewDiagnosisHandler,
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

// bootstrapState rebuilds the persisted session and preferences before the
// server starts taking requests.
func bootstrapState(ctx context.Context, sessionUC usecase.SessionUsecase, preferenceUC usecase.PreferenceUsecase, logger *slog.Logger) error {
	if err := sessionUC.Restore(ctx); err != nil {
		return err
	}
	if err := preferenceUC.Load(ctx); err != nil {
		return err
	}

	logger.Info("State restored",
		slog.Bool("authenticated", sessionUC.IsAuthenticated()),
		slog.String("language", preferenceUC.Language().String()),
		slog.Bool("darkMode", preferenceUC.IsDarkMode()))

	return nil
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
