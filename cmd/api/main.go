package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"metrosim.transitlab.org/internal/app"
	"metrosim.transitlab.org/internal/restapi"
	"metrosim.transitlab.org/internal/sim"
)

func main() {
	var cfg app.Config
	var apiKeysFlag string
	var scenarioPath string
	var seed int64
	var tickMs int

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file to load at startup")
	flag.Int64Var(&seed, "seed", 0, "Random seed for passenger destination draws (0 seeds from the clock)")
	flag.IntVar(&tickMs, "tick-ms", 0, "Advance the simulation every N milliseconds (0 disables the background ticker)")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	simConfig := sim.DefaultConfig()
	var scenario *sim.Scenario
	if scenarioPath != "" {
		loaded, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logger.Error("failed to load scenario", "error", err, "path", scenarioPath)
			os.Exit(1)
		}
		scenario = loaded
		simConfig = scenario.Simulation.WithDefaults()
	}
	if seed != 0 {
		simConfig.Seed = seed
	}

	manager := sim.NewManager(simConfig, logger)
	if scenario != nil {
		if err := scenario.Apply(manager); err != nil {
			logger.Error("failed to apply scenario", "error", err, "path", scenarioPath)
			os.Exit(1)
		}
	}

	application := &app.Application{
		Config:    cfg,
		SimConfig: simConfig,
		Logger:    logger,
		Sim:       manager,
	}

	router := httprouter.New()
	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if tickMs > 0 {
		manager.StartTicker(time.Duration(tickMs) * time.Millisecond)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		logger.Info("shutting down")
		manager.Shutdown()
		_ = srv.Close()
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
