// main is the entry point of the Employees API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML + environment, .env preloaded)
//  2. Initialise the logger
//  3. Connect to MongoDB and ensure the unique email index
//  4. Register all HTTP routes and wrap them with CORS
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, disconnect the store
//
// RUNNING THE SERVER:
//
//	go run ./cmd/employees-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/employees-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/employees-api/internal/config"
	"github.com/aanand-mishra/employees-api/internal/http/handlers/employee"
	"github.com/aanand-mishra/employees-api/internal/http/middleware"
	"github.com/aanand-mishra/employees-api/internal/storage/mongodb"
	"github.com/rs/cors"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the YAML config (plus env overrides) and exits if
	// anything is wrong. If this returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	log := setupLogger(cfg.Env)

	log.Info("starting employees-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage (MongoDB) ───────────────────────────────────
	// The connection is owned here and injected into the handlers as the
	// storage.Storage INTERFACE, not *mongodb.MongoDB. Swapping the store
	// later only requires changing this one line. A failure at this point
	// is fatal: the service cannot run without its database. Failures on
	// later requests are per-request errors, never a crash.
	store, err := mongodb.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised", slog.String("database", cfg.Database))

	// ── 4. Register HTTP Routes ───────────────────────────────────────────
	// The handler factories (employee.New, employee.GetByID, ...) receive
	// `store` once at startup and return the actual per-request handlers.
	//
	// Route table (base path /api/employee/v1):
	//   POST   /employees       → create a new employee (required-fields gate in front)
	//   GET    /employees       → list all employees, newest first
	//   GET    /employees/{id}  → get one employee by ID
	//   PATCH  /employees/{id}  → merge-update an employee
	//   DELETE /employees/{id}  → delete an employee
	router := http.NewServeMux()

	router.HandleFunc("POST /api/employee/v1/employees", middleware.RequireFields(employee.New(store)))
	router.HandleFunc("GET /api/employee/v1/employees", employee.GetList(store))
	router.HandleFunc("GET /api/employee/v1/employees/{id}", employee.GetByID(store))
	router.HandleFunc("PATCH /api/employee/v1/employees/{id}", employee.Update(store))
	router.HandleFunc("DELETE /api/employee/v1/employees/{id}", employee.Delete(store))

	router.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello World!"))
	})

	// Browser clients call this API cross-origin, so every route goes
	// through the CORS middleware. All origins are allowed; the method
	// list has to include PATCH and DELETE or preflights would fail.
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(router)

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr, // e.g. "localhost:8082"
		Handler: handler,

		// Production hardening — timeouts prevent slow-client attacks.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks forever; running it here in main would keep
	// the graceful-shutdown code below from ever running.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed when Shutdown() is
		// called. That's expected — not an error worth logging.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered so we don't miss the signal if main is briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// Give in-flight requests 5 seconds to finish, then disconnect the
	// store. The store is closed last — requests may still need it.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := store.Close(ctx); err != nil {
		log.Error("failed to disconnect storage",
			slog.String("error", err.Error()))
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
