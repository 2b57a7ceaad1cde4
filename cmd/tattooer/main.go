package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"tattooer/config"
	"tattooer/internal/appstate"
	"tattooer/internal/delivery"
	"tattooer/internal/delivery/http"
	"tattooer/internal/delivery/http/middleware"
	"tattooer/internal/delivery/http/router/handler"
	"tattooer/internal/delivery/scheduler"
	"tattooer/internal/domain/repository"
	"tattooer/internal/domain/service"
	"tattooer/internal/infra/auth"
	"tattooer/internal/infra/devicecal"
	"tattooer/internal/infra/keystore"
	logs "tattooer/internal/infra/log"
	"tattooer/internal/infra/persistence/postgres"
	"tattooer/internal/infra/qrcode"
	"tattooer/internal/usecase/impl"

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
		newKeyValueStore,
	)
}

// newKeyValueStore assembles the account cache: an encrypted file store as
// the primary backend with a plain JSON file as the fallback.
func newKeyValueStore(cfg *config.Config, logger *slog.Logger) (repository.KeyValueStore, error) {
	if cfg.Keystore == nil {
		return nil, fmt.Errorf("keystore configuration is required")
	}

	secure, err := keystore.NewSecureStore(cfg.Keystore.SecurePath, cfg.Keystore.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create secure store: %w", err)
	}

	plain := keystore.NewFileStore(cfg.Keystore.PlainPath)

	return keystore.NewFallbackStore(secure, plain, logger), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewArtistRepository,
			postgres.NewBlockTimeRepository,
			postgres.NewScheduleRepository,
			postgres.NewConventionRepository,
			postgres.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			appstate.NewStore,
			newQRCodeService,
			newFeedProvider,
			newDeviceCalendarService,
			newFeedRefresher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newFeedProvider creates the device calendar feed provider. Running with no
// configured feeds is fine: every artist simply has no device calendar.
func newFeedProvider(cfg *config.Config, logger *slog.Logger) *devicecal.FeedProvider {
	providerCfg := devicecal.Config{}
	if cfg.DeviceCalendar != nil {
		providerCfg.Feeds = cfg.DeviceCalendar.Feeds
		providerCfg.CacheDir = cfg.DeviceCalendar.CacheDir
	}

	return devicecal.NewFeedProvider(providerCfg, logger)
}

func newDeviceCalendarService(provider *devicecal.FeedProvider) service.DeviceCalendarService {
	return provider
}

func newFeedRefresher(provider *devicecal.FeedProvider) scheduler.FeedRefresher {
	return provider
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewCalendarService,
			impl.NewSessionService,
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
			handler.NewCalendarHandler,
			handler.NewAccountHandler,
			handler.NewSessionHandler,
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
				scheduler.NewScheduler,
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
