package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GolovachevS/db-config-reader/internal/config"
	transport "github.com/GolovachevS/db-config-reader/internal/http"
	"github.com/GolovachevS/db-config-reader/internal/loader"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("db-config-reader stopped", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

// run prints the connection string to stdout, or serves it over HTTP with -serve
// until ctx is done. Logs go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := flag.NewFlagSet("db-config-reader", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", cfg.ConfigPath, "path to the JSON database configuration")
	useEnv := flags.Bool("env", cfg.UseEnv, "treat configuration values as environment variable names")
	serve := flags.Bool("serve", false, "serve connection strings over HTTP instead of printing one")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	logger := newLogger(cfg.LogLevel, stderr)
	slog.SetDefault(logger)

	ld := loader.New(nil)

	if *serve {
		ln, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.AppPort))
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return serveHTTP(ctx, logger, ln, transport.NewServer(ld, transport.FileSource{Path: *configPath, UseEnv: *useEnv}))
	}

	if *configPath == "" {
		return errors.New("configuration path is required (-config or DB_CONFIG_PATH)")
	}

	connString, err := render(ld, *configPath, *useEnv)
	if err != nil {
		return fmt.Errorf("render %s: %w", *configPath, err)
	}
	logger.Debug("connection string rendered",
		slog.String("path", *configPath),
		slog.Bool("use_env", *useEnv),
		slog.String("connection_string", loader.Redact(connString)),
	)

	_, err = fmt.Fprintln(stdout, connString)
	return err
}

func render(ld *loader.Loader, path string, useEnv bool) (string, error) {
	if !useEnv {
		return ld.LoadFromFile(path)
	}
	dbCfg, err := loader.LoadFile(path)
	if err != nil {
		return "", err
	}
	return ld.LoadFromObject(dbCfg, true)
}

// serveHTTP serves handler on ln until ctx is done, then shuts down gracefully.
func serveHTTP(ctx context.Context, logger *slog.Logger, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", slog.String("addr", ln.Addr().String()))
		serverErr <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

// newLogger accepts the slog level names (debug, info, warn, error) in any case,
// falling back to info.
func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
