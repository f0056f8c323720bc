// Sales agent orchestrator server. Hosts the agent runtime and HTTP API,
// runs the CRM sync engine and its scheduler, and streams execution
// progress over Redis.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ScientiaCapital/sales-agent/pkg/agent"
	"github.com/ScientiaCapital/sales-agent/pkg/agent/catalog"
	"github.com/ScientiaCapital/sales-agent/pkg/api"
	"github.com/ScientiaCapital/sales-agent/pkg/bus"
	"github.com/ScientiaCapital/sales-agent/pkg/config"
	"github.com/ScientiaCapital/sales-agent/pkg/crm"
	"github.com/ScientiaCapital/sales-agent/pkg/crypto"
	"github.com/ScientiaCapital/sales-agent/pkg/database"
	"github.com/ScientiaCapital/sales-agent/pkg/llm"
	"github.com/ScientiaCapital/sales-agent/pkg/scheduler"
	"github.com/ScientiaCapital/sales-agent/pkg/services"
	"github.com/ScientiaCapital/sales-agent/pkg/stream"
	"github.com/ScientiaCapital/sales-agent/pkg/usage"
	"github.com/ScientiaCapital/sales-agent/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// buildPlatforms constructs one adapter per configured platform tag.
func buildPlatforms(registry *config.PlatformRegistry) (map[string]crm.Platform, error) {
	platforms := make(map[string]crm.Platform, registry.Len())
	for tag, pc := range registry.GetAll() {
		switch tag {
		case "hubspot":
			platforms[tag] = crm.NewHubSpot(pc)
		case "apollo":
			platforms[tag] = crm.NewApollo(pc)
		case "salesloft":
			platforms[tag] = crm.NewSalesloft(pc)
		default:
			return nil, services.NewValidationError("crm_platforms", "no adapter for platform: "+tag)
		}
	}
	return platforms, nil
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting sales agent server",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (migrations run on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Redis bus (streams, rate budgets, DLQ, caches)
	b, err := bus.New(ctx, os.Getenv("REDIS_URL"))
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := b.Close(); err != nil {
			slog.Error("Error closing bus", "error", err)
		}
	}()
	slog.Info("Connected to Redis bus")

	// 4. Domain services
	cipher, err := crypto.NewCipherFromEnv()
	if err != nil {
		slog.Error("Failed to initialize credential cipher", "error", err)
		os.Exit(1)
	}
	leadService := services.NewLeadService(dbClient.Client)
	contactService := services.NewContactService(dbClient.Client)
	executionService := services.NewExecutionService(dbClient.Client)
	syncLogService := services.NewSyncLogService(dbClient.Client)
	credentialService := services.NewCredentialService(dbClient.Client, cipher)
	slog.Info("Services initialized")

	// 5. Usage tracking and the LLM router
	reporter := usage.NewReporter(dbClient.DB(), b)
	tracker := usage.NewTracker(usage.NewEntStore(dbClient.Client), reporter)
	tracker.Start()

	router, err := llm.NewRouter(cfg, tracker)
	if err != nil {
		slog.Error("Failed to build LLM router", "error", err)
		os.Exit(1)
	}

	// 6. Streaming fabric and agent runtime
	fabric := stream.NewFabric(b, cfg.Stream)

	tools, agents, err := catalog.Build(catalog.Deps{
		Leads:    leadService,
		Contacts: contactService,
	})
	if err != nil {
		slog.Error("Failed to build agent catalog", "error", err)
		os.Exit(1)
	}
	runtime := agent.NewRuntime(cfg.Runtime, router,
		agent.NewExecutionStore(executionService), fabric, tools, nil)
	for _, a := range agents {
		if err := runtime.Register(a); err != nil {
			slog.Error("Failed to register agent", "agent", a.Name(), "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Agent runtime initialized", "agents", len(agents))

	// 7. CRM sync engine
	platforms, err := buildPlatforms(cfg.Platforms)
	if err != nil {
		slog.Error("Failed to build CRM adapters", "error", err)
		os.Exit(1)
	}
	deadLetters := crm.NewDeadLetters(b)
	engine := crm.NewEngine(cfg.Platforms, platforms, contactService, syncLogService,
		crm.NewRateBudget(b), deadLetters, cfg.Resilience)
	slog.Info("CRM sync engine initialized", "platforms", cfg.Platforms.Len())

	// 8. Scheduler (before the HTTP server so health can report the pool)
	pool := scheduler.NewPool(cfg.Pool)
	sched := scheduler.New(cfg.Scheduler, cfg.Runtime, cfg.Platforms,
		engine, syncLogService, reporter, executionService, pool)
	sched.Start()

	// 9. HTTP server (non-blocking)
	server := api.NewServer(api.Deps{
		DB:          dbClient,
		Bus:         b,
		Runtime:     runtime,
		Fabric:      fabric,
		Engine:      engine,
		Executions:  executionService,
		Leads:       leadService,
		SyncLogs:    syncLogService,
		DeadLetters: deadLetters,
		OAuth:       crm.NewOAuthStates(b),
		Credentials: credentialService,
		Reports:     reporter,
		Scheduler:   sched,
		Platforms:   cfg.Platforms,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Run(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Sales agent server started")

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop producing work first, then drain it.
	if err := sched.Stop(); err != nil {
		slog.Warn("Scheduler shutdown incomplete", "error", err)
	} else {
		slog.Info("Scheduler stopped")
	}

	drainCtx, drainCancel := context.WithTimeout(ctx, cfg.Pool.GracefulShutdownTimeout)
	defer drainCancel()
	if err := engine.Shutdown(drainCtx); err != nil {
		slog.Warn("Sync engine shutdown incomplete", "error", err)
	} else {
		slog.Info("Sync engine stopped")
	}
	if err := runtime.Shutdown(drainCtx); err != nil {
		slog.Warn("Agent runtime shutdown incomplete", "error", err)
	} else {
		slog.Info("Agent runtime stopped")
	}

	// Flush buffered usage records before the HTTP server goes away.
	tracker.Stop()

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
