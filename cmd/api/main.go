package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calfinance/config"
	httpHandler "calfinance/internal/adapter/http/handler"
	"calfinance/internal/cardnumber"
	"calfinance/internal/service"
	"calfinance/internal/store"
	"calfinance/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting CalFinance card service")

	// One random source feeds both the number generator and the factory.
	seed := cfg.Cards.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	layout, err := cardnumber.ParseLayout(cfg.Generator.Layout)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid card number layout")
	}
	numbers := cardnumber.NewGenerator(rng, layout)

	factory := service.NewCardFactory(rng, numbers, service.FactoryOptions{
		MaxTransactions: cfg.Cards.MaxTransactions,
		BalanceBound:    cfg.Cards.BalanceBound,
		HistoryDays:     cfg.Cards.HistoryDays,
		LegacyTagging:   cfg.Generator.LegacyTagging,
	}, nil)

	cards := store.New(factory.GenerateCards(cfg.Cards.InitialCount))
	cardSvc := service.NewCardService(cards, factory, numbers, logger.Component(log, "card_store"))

	log.Info().
		Uint64("seed", seed).
		Str("layout", numbers.Layout().String()).
		Int("cards", cards.Len()).
		Msg("Wallet generated")

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CardSvc:    cardSvc,
		ResetCount: cfg.Cards.InitialCount,
		Mode:       cfg.Server.Mode,
		Logger:     logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
