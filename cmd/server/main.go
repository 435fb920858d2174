package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/stardrift/pkg/api"
	"github.com/cbodonnell/stardrift/pkg/config"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/repositories"
	"github.com/cbodonnell/stardrift/pkg/version"
)

func main() {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	port := flag.Int("port", cfg.Port, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "allowed CORS origin")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	dbPath := flag.String("db", cfg.DBPath, "Path to the sqlite database, ignored when DATABASE_URL is set")
	migrations := flag.String("migrations", cfg.MigrationsDir(), "Path to the migrations of the selected database")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting score server version %s", version.Get())
	ctx := context.Background()

	var repository repositories.Repository
	if cfg.DatabaseURL != "" {
		repository, err = repositories.NewPostgresRepository(ctx, cfg.DatabaseURL, *migrations)
		if err != nil {
			panic(fmt.Sprintf("Failed to create Postgres repository: %v", err))
		}
	} else {
		repository, err = repositories.NewSQLiteRepository(ctx, *dbPath, *migrations)
		if err != nil {
			panic(fmt.Sprintf("Failed to create SQLite repository: %v", err))
		}
	}
	defer repository.Close(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:        *port,
		AllowOrigin: *allowOrigin,
		Repository:  repository,
	}
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: cfg.TLSCertFile,
			KeyFile:  cfg.TLSKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
