package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/campaigns"
	"server/internal/geo"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/ledger"
	"server/internal/notify"
	"server/migrations"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := infra.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	runner := infra.NewSQLRunner(dbpool, logger)
	store := ledger.NewPostgresStore(runner)
	campaignRepo := campaigns.NewRepo(runner)
	queue := notify.NewQueue(runner)

	var mailer notify.Mailer = notify.Disabled{}
	if cfg.MailConfigured() {
		mailer, err = notify.NewHTTPMailer(notify.HTTPMailerOptions{
			APIKey:      cfg.MailAPIKey,
			BaseURL:     cfg.MailBaseURL,
			FromAddress: cfg.MailFromAddress,
			FromName:    cfg.MailFromName,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure mailer")
		}
	} else {
		logger.Warn().Msg("MAIL_API_KEY missing, notification sending disabled")
	}
	dispatcher := notify.NewDispatcher(mailer, cfg.MailSendInterval, logger)

	countries, err := geo.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}

	app := handlers.NewApp(logger, campaignRepo, store, dispatcher, queue, countries)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
