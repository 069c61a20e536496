package main

import (
	"context"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/http"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	logs "portal/internal/infra/log"
	"portal/internal/infra/qrcode"
	"portal/internal/infra/upstreamhttp"
	"portal/internal/usecase/impl"

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
		injectClient(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		newQRCodeService,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) *qrcode.Service {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewService(256, "M")
	}

	return qrcode.NewService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectClient() fx.Option {
	return fx.Options(
		fx.Provide(
			upstreamhttp.NewUserClient,
			upstreamhttp.NewUserDeviceClient,
			upstreamhttp.NewUserSubscriptionClient,
			upstreamhttp.NewOrderClient,
			upstreamhttp.NewPaymentClient,
			upstreamhttp.NewVPNServerClient,
			upstreamhttp.NewVPNServerConfigurationClient,
			upstreamhttp.NewVPNTypeClient,
			upstreamhttp.NewVPNServerStatusClient,
			upstreamhttp.NewGeoClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewVPNServerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSubscriptionHandler,
			handler.NewDeviceHandler,
			handler.NewPinCodeHandler,
			handler.NewBillingHandler,
			handler.NewVPNServerHandler,
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
		delivery := delivery
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
