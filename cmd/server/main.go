package main

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/kachelmann-weather/config"
	"ulascansenturk/kachelmann-weather/internal/api/v1/handlers"
	"ulascansenturk/kachelmann-weather/internal/service"
	"ulascansenturk/kachelmann-weather/pkg/kachelmann"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	client, err := newKachelmannClient(conf, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize KachelmannWetter client")
	}

	weatherService := service.NewWeatherService(client)

	gin.SetMode(conf.GinMode)
	handler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func newKachelmannClient(conf *config.Config, logger zerolog.Logger) (*kachelmann.Client, error) {
	opts := []kachelmann.Option{
		kachelmann.WithBaseURL(conf.KachelmannBaseURL),
		kachelmann.WithUnits(kachelmann.Units(conf.KachelmannUnits)),
		kachelmann.WithHTTPClient(&http.Client{Timeout: conf.HTTPTimeoutDuration()}),
		kachelmann.WithLogger(logger.With().Str("component", "kachelmann").Logger()),
	}
	if conf.HasCoordinates {
		opts = append(opts, kachelmann.WithCoordinates(conf.Latitude, conf.Longitude))
	} else {
		logger.Warn().Msg("no coordinates configured, only station endpoints are available")
	}

	return kachelmann.New(conf.KachelmannAPIKey, opts...)
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
