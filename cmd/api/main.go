package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AceRider75/moodfood/internal/adapters/mealdb"
	"github.com/AceRider75/moodfood/internal/adapters/rest"
	"github.com/AceRider75/moodfood/internal/adapters/spoonacular"
	"github.com/AceRider75/moodfood/internal/catalog"
	"github.com/AceRider75/moodfood/internal/config"
	"github.com/AceRider75/moodfood/internal/core/ports"
	"github.com/AceRider75/moodfood/internal/core/services"
	"github.com/AceRider75/moodfood/internal/logging"
	"github.com/AceRider75/moodfood/internal/worker"
)

func main() {
	// 1. Configuration (Environment Variables)
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
	logrus.SetLevel(log.GetLevel())
	logrus.SetFormatter(log.Formatter)

	// 2. Initialize "Driven" Adapters and the matching planner
	moods := catalog.Default()
	if cfg.CatalogPath != "" {
		moods, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load mood catalog")
		}
		log.WithField("path", cfg.CatalogPath).Info("loaded mood catalog")
	}

	chooser := services.NewChooser(cfg.Seed)
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	planner, source := strategy(cfg, moods, chooser, httpClient)

	// 3. Initialize Core Logic
	resolver := services.NewResolver(planner, source, chooser)
	session := services.NewSession(resolver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := worker.NewPool(session, cfg.QueueSize, cfg.HTTPTimeout*2)
	pool.Start(logging.WithLogger(context.Background(), log), cfg.Workers)
	defer pool.Stop()

	// 4. Initialize "Driving" Adapter
	handler := rest.NewHandler(session, pool, log).WithResolveTimeout(cfg.HTTPTimeout * 2)

	// 5. Start the Server
	log.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"strategy": cfg.Strategy,
		"workers":  cfg.Workers,
	}).Info("moodfood API is running")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.WithError(err).Error("server failed")
			return
		}
	case <-ctx.Done():
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown error")
		}
	}
}

// strategy pairs each planner with the upstream whose query shape it
// produces. The pairs are never mixed.
func strategy(cfg config.Config, moods catalog.Catalog, chooser *services.Chooser, httpClient *http.Client) (ports.Planner, ports.RecipeSource) {
	switch cfg.Strategy {
	case config.StrategyKeyword:
		return services.NewKeywordPlannerWith(cfg.ResultCount, moods.Keywords),
			spoonacular.NewClient(httpClient, cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey)
	default:
		return services.NewCategoryPlannerWith(chooser, moods.Categories),
			mealdb.NewClient(httpClient, cfg.MealDBBaseURL)
	}
}
