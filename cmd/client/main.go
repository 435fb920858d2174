package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/stardrift/client/game"
	"github.com/cbodonnell/stardrift/pkg/config"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/repositories"
	"github.com/cbodonnell/stardrift/pkg/session"
	"github.com/cbodonnell/stardrift/pkg/state"
	"github.com/cbodonnell/stardrift/pkg/version"
	"github.com/cbodonnell/stardrift/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	dbPath := flag.String("db", cfg.DBPath, "Path to the sqlite database holding the last score")
	migrations := flag.String("migrations", cfg.Migrations, "Path to the sqlite migrations")
	hazardInterval := flag.Float64("hazard-interval", cfg.HazardSpawnInterval, "Seconds between hazard spawns")
	collectibleInterval := flag.Float64("collectible-interval", cfg.CollectibleSpawnInterval, "Seconds between collectible spawns")
	initialScore := flag.Int("initial-score", cfg.InitialScore, "Score a session starts with")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := repositories.NewSQLiteRepository(ctx, *dbPath, *migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to create SQLite repository: %v", err))
	}
	defer repository.Close(context.Background())

	saveScoreChanSize := 16
	saveScoreChan := make(chan workers.SaveScoreRequest, saveScoreChanSize)
	store := state.NewInMemoryScoreStore(saveScoreChan)

	lastScore, err := repository.LoadLastScore(ctx)
	switch {
	case err == nil:
		store.Preload(lastScore.Score)
		log.Info("Loaded last score %d", lastScore.Score)
	case repositories.IsNotFound(err):
		log.Debug("No last score recorded yet")
	default:
		log.Error("Failed to load last score: %v", err)
	}

	saveScoreWorker := workers.NewSaveScoreWorker(workers.NewSaveScoreWorkerOptions{
		Repository:    repository,
		SaveScoreChan: saveScoreChan,
		Timeout:       cfg.SaveTimeout,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		saveScoreWorker.Start(ctx)
	}()

	sessionConfig := cfg.SessionConfig()
	sessionConfig.HazardSpawnInterval = *hazardInterval
	sessionConfig.CollectibleSpawnInterval = *collectibleInterval
	sessionConfig.InitialScore = *initialScore

	registry := session.NewRegistry()
	g, err := game.NewGame(game.NewGameOptions{
		Debug:    *debug,
		Config:   sessionConfig,
		Store:    store,
		Registry: registry,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowTitle("Stardrift")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Game exited with error: %v", err)
	}

	registry.Release()
	cancel()
	<-workerDone
	log.Info("Client stopped")
}
