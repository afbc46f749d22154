package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haskel/mentalload/internal/catalog"
	"github.com/haskel/mentalload/internal/config"
	"github.com/haskel/mentalload/internal/logger"
	"github.com/haskel/mentalload/internal/monitor"
	"github.com/haskel/mentalload/internal/server"
	"github.com/haskel/mentalload/internal/session"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mentalload API server",
	Long:  `Start the mentalload HTTP API server in foreground mode.`,
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Override port if specified via flag
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if verbose {
		log.SetLevel("debug")
	}

	log.Info("mentalload starting",
		"version", Version,
		"config", cfgFile,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat := catalog.Default()

	store := session.NewStore(cfg.SessionConfig(), log.Component("sessions"))
	store.Start(ctx)

	collector := monitor.DefaultCollector(log.Component("monitor"))

	// Write PID file if configured
	if cfg.Server.PIDFile != "" {
		if err := writePIDFile(cfg.Server.PIDFile); err != nil {
			log.Warn("failed to write PID file", "error", err)
		} else {
			defer os.Remove(cfg.Server.PIDFile)
		}
	}

	srv := server.New(cfg, cat, store, collector, log.Component("http"), Version)

	// Signal channels
	sighupCh := make(chan os.Signal, 1)
	sigCh := make(chan os.Signal, 1)
	shutdownDone := make(chan struct{})

	signal.Notify(sighupCh, syscall.SIGHUP)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Handle SIGHUP for hot-reload
	go func() {
		for {
			select {
			case <-sighupCh:
				log.Info("SIGHUP received, reloading configuration")

				newCfg, err := loadConfig()
				if err == nil {
					err = newCfg.Validate()
				}
				if err != nil {
					log.Error("invalid configuration, reload aborted", "error", err)
					continue
				}

				srv.ReloadConfig(newCfg)
				if !verbose {
					log.SetLevel(newCfg.Logging.Level)
				}
			case <-shutdownDone:
				return
			}
		}
	}()

	// Handle shutdown signals
	go func() {
		<-sigCh

		log.Info("shutdown signal received")

		// Stop receiving signals
		signal.Stop(sighupCh)
		signal.Stop(sigCh)
		close(shutdownDone)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", "error", err)
		}

		store.Stop()
		cancel()
	}()

	log.Info("mentalload ready",
		"addr", srv.Addr(),
		"tasks", cat.Len(),
		"debug", cfg.Debug.Enabled,
	)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		store.Stop()
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("mentalload stopped", "sessions_dropped", store.Len())
	return nil
}
