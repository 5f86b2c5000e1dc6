package app

import (
	"log/slog"

	"metrosim.transitlab.org/internal/sim"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: the server configuration, the logger, and the simulation
// manager every request operates against.
type Application struct {
	Config    Config
	SimConfig sim.Config
	Logger    *slog.Logger
	Sim       *sim.Manager
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.), and the accepted
// API keys. These are read from command-line flags when the Application
// starts.
type Config struct {
	Port    int
	Env     string
	ApiKeys []string
}
