package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"media-collector/internal/collector"
	"media-collector/internal/filesystem"
	"media-collector/internal/handlers"
	"media-collector/internal/logging"
	"media-collector/internal/memory"
	"media-collector/internal/metrics"
	"media-collector/internal/middleware"
	"media-collector/internal/startup"
)

const shutdownTimeout = 30 * time.Second

// NewServeCommand creates the serve subcommand
func NewServeCommand() *cobra.Command {
	var port, metricsPort string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the collect HTTP API",
		Long: `Serve POST /api/collect on PORT and Prometheus metrics on METRICS_PORT.
Configuration is read from the environment; flags override it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := startup.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				config.Port = port
			}
			if cmd.Flags().Changed("metrics-port") {
				config.MetricsPort = metricsPort
			}
			return runServer(config)
		},
	}

	cmd.Flags().StringVar(&port, "port", startup.DefaultPort, "HTTP server port (overrides PORT)")
	cmd.Flags().StringVar(&metricsPort, "metrics-port", startup.DefaultMetricsPort, "Metrics server port (overrides METRICS_PORT)")

	return cmd
}

func runServer(config *startup.Config) error {
	startTime := time.Now()

	memory.ConfigureFromEnv()

	// Wire metrics observers before any filesystem activity
	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
	metrics.InitializeMetrics()
	filesystem.SetObserver(metrics.NewFilesystemObserver())

	collectConfig := collector.DefaultConfig()
	collectConfig.IOWorkers = config.CollectWorkers
	startup.LogCollectorInit(collectConfig.IOWorkers, collectConfig.Retry)
	c := collector.New(collectConfig, collector.WithObserver(metrics.NewCollectorObserver()))

	h := handlers.New(c, config)

	metricsCollector := metrics.NewCollector(h, time.Minute)
	metricsCollector.Start()

	router := setupRouter(h)
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	loggingConfig.InvocationHeader = handlers.InvocationHeader
	handler := middleware.Logger(loggingConfig)(router)

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Large trees can take a while; collect has no deadline of its own
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = &http.Server{
			Addr:              ":" + config.MetricsPort,
			Handler:           setupMetricsRouter(h),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	return serve(srv, ln, metricsSrv, h, metricsCollector, sigChan)
}

// serve runs srv on ln until a signal arrives on stop, then returns once
// shutdown has drained in-flight requests or timed out.
func serve(srv *http.Server, ln net.Listener, metricsSrv *http.Server, h *handlers.Handlers,
	mc *metrics.Collector, stop <-chan os.Signal,
) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		handleShutdown(<-stop, srv, metricsSrv, h, mc)
	}()

	// Serve returns ErrServerClosed as soon as Shutdown starts, before
	// in-flight requests finish.
	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	middleware.InstrumentRouter(r, middleware.DefaultMetricsConfig())

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/collect", h.Collect).Methods("POST").Name("collect")

	return r
}

func setupMetricsRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", h.MetricsHandler()).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	return r
}

func handleShutdown(sig os.Signal, srv, metricsSrv *http.Server, h *handlers.Handlers, mc *metrics.Collector) {
	startup.LogShutdownInitiated(sig.String())
	h.SetShuttingDown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	startup.LogShutdownStep("Stopping metrics collector")
	mc.Stop()
	startup.LogShutdownStepComplete("Metrics collector stopped")

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	// In-flight collect requests run to completion within the timeout
	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
}
