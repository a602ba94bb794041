package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/engine"
	"github.com/aratama/magiacircle/internal/infrastructure/storage"
	"github.com/aratama/magiacircle/internal/server"
	"github.com/aratama/magiacircle/internal/spell"
	"github.com/aratama/magiacircle/internal/version"
	"github.com/aratama/magiacircle/pkg/dungeon"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг флагов
	var seed int64
	var configPath, replayPath string
	// Читаем флаг -seed. По умолчанию 0 (сид из конфига или случайный).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 keeps config/random seed)")
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.StringVar(&replayPath, "replay", "", "Path to .mcrp replay file to simulate")
	flag.Parse()

	logger.Log.Info("Starting Magia Circle...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	// 2. Статические данные: каталог заклинаний и палитра
	if err := spell.ValidateCatalog(); err != nil {
		logger.Log.WithError(err).Fatal("Spell catalog is broken")
	}
	pal, err := dungeon.LoadPalette(cfg.PaletteFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load palette")
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		runReplay(cfg, pal, replayPath)
		return // Выходим после симуляции
	}

	logger.Log.WithField("seed", cfg.Seed).Info("Using master seed")

	atlas, err := loadAtlas(cfg, pal)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load atlas")
	}

	// 3. Сессия и сервер
	session, err := engine.NewSession(cfg, atlas, pal)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to start session")
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Run сохраняет реплей при остановке
		if err := session.Run(ctx); err != nil {
			logger.Log.WithError(err).Error("Session stopped with error")
		}
	}()

	if err := server.New(session, cfg.Port).Run(ctx); err != nil {
		logger.Log.WithError(err).Fatal("Server start error")
	}

	<-done
	logger.Log.Info("Done.")
}

// loadAtlas читает атлас с диска или генерирует его от сида.
// Генератор получает свой источник случайности, чтобы атлас не сдвигал
// последовательность сессии.
func loadAtlas(cfg engine.Config, pal dungeon.Palette) (*dungeon.Atlas, error) {
	if cfg.AtlasImage != "" {
		return dungeon.LoadAtlas(cfg.AtlasImage, cfg.AtlasSlices)
	}
	logger.Log.WithField("levels", cfg.Levels).Info("No atlas configured, generating levels")
	return dungeon.GenerateAtlas(rand.New(rand.NewSource(cfg.Seed)), cfg.Levels, pal), nil
}

func runReplay(cfg engine.Config, pal dungeon.Palette, path string) {
	logger.Log.Info("Mode: Replay Simulation")

	rep, err := storage.NewReplayService("").Load(path)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load replay")
	}

	// Атлас генерируется от сида реплея
	cfg.Seed = rep.Seed
	atlas, err := loadAtlas(cfg, pal)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load atlas")
	}

	session, err := engine.RunReplay(cfg, atlas, pal, rep)
	if err != nil {
		logger.Log.WithError(err).Fatal("Replay failed")
	}

	session.View(func(w *domain.GameWorld) {
		fields := logrus.Fields{"tick": w.Tick, "slice": w.Slice}
		if p := w.Player(); p != nil {
			fields["x"], fields["y"] = p.Pos.X, p.Pos.Y
			fields["life"] = p.Actor.Life
		}
		logger.Log.WithFields(fields).Info("Replay final state")
	})
}
