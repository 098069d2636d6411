package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/floodwatch/floodwatch-backend-go/internal/alert"
	"github.com/floodwatch/floodwatch-backend-go/internal/api"
	"github.com/floodwatch/floodwatch-backend-go/internal/config"
	"github.com/floodwatch/floodwatch-backend-go/internal/database"
	"github.com/floodwatch/floodwatch-backend-go/internal/datasource"
	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/handler"
	"github.com/floodwatch/floodwatch-backend-go/internal/observability"
	"github.com/floodwatch/floodwatch-backend-go/internal/route"
	"github.com/floodwatch/floodwatch-backend-go/internal/service"
	"github.com/floodwatch/floodwatch-backend-go/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	users, alerts, err := buildStores(cfg)
	if err != nil {
		log.Fatal("Failed to initialize store: ", err)
	}
	defer database.Close()

	metrics := observability.NewMetrics()

	source := buildSource(cfg)
	log.Printf("Environmental data source: %s", source.Name())

	engine := flood.NewEngine(source, flood.RainfallScorer{}, clockwork.NewRealClock(), cfg.ScanConcurrency)

	var notifier alert.Notifier
	if cfg.AlertsEnabled {
		notifier = alert.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	} else {
		log.Println("Alert delivery disabled; alerts will be recorded but not sent")
	}
	dispatcher := alert.NewDispatcher(notifier, cfg.AlertTimeout, func(ok bool) {
		outcome := "sent"
		if !ok {
			outcome = "failed"
		}
		metrics.AlertsDispatched.WithLabelValues(outcome).Inc()
	})

	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.JWTTTL)
	floodService := service.NewFloodService(engine, alerts, dispatcher, metrics)

	provider := route.NewGoogleDirections(cfg.GoogleMapsAPIKey, cfg.ProviderTimeout)
	filter := route.NewSafetyFilter(cfg.RouteProximityM)
	routeService := service.NewRouteService(engine, provider, filter, metrics)

	router := api.SetupRouter(
		authService,
		handler.NewAuthHandler(authService),
		handler.NewFloodHandler(floodService),
		handler.NewVehicleHandler(floodService),
		handler.NewRouteHandler(routeService),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// buildStores selects the store backend once at startup. There is no
// runtime fallback from sqlite to memory: a broken database should fail
// loudly here, not masquerade as an empty account list.
func buildStores(cfg *config.Config) (store.UserStore, store.AlertStore, error) {
	if cfg.StoreBackend == "memory" {
		m := store.NewMemoryStore()
		return m, m, nil
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		return nil, nil, err
	}
	s := store.NewSQLiteStore(database.GetDB())
	return s, s, nil
}

func buildSource(cfg *config.Config) datasource.EnvironmentalSource {
	var source datasource.EnvironmentalSource
	if cfg.DataSource == "openmeteo" {
		source = datasource.NewOpenMeteo(cfg.ProviderTimeout)
		// Only live providers need quota protection
		source = datasource.NewRateLimitedSource(source, cfg.ProviderRPS, cfg.ScanConcurrency)
	} else {
		source = datasource.NewSimulator(cfg.SimulatorSeed)
	}
	return source
}
