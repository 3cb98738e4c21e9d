// Package main is the terminal table: two players share one keyboard and
// take turns typing commands.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/buckshot/internal/config"
	"github.com/cory-johannsen/buckshot/internal/game/level"
	"github.com/cory-johannsen/buckshot/internal/game/rng"
	"github.com/cory-johannsen/buckshot/internal/game/session"
	"github.com/cory-johannsen/buckshot/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults and BUCKSHOT_* env when empty)")
	levelID := flag.String("level", "", "level ID to play; overrides game.level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *levelID != "" {
		cfg.Game.Level = *levelID
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	opts := session.Options{
		Players:                 cfg.Game.Players,
		StartingLives:           uint8(cfg.Game.StartingLives),
		MaxLives:                uint8(cfg.Game.MaxLives),
		MaxItems:                cfg.Game.MaxItems,
		ItemsPerLoad:            cfg.Game.ItemsPerLoad,
		KeepTurnOnBlankSelfShot: cfg.Game.KeepTurnOnBlankSelfShot,
	}
	if cfg.Game.Level != "" {
		levels, err := level.LoadLevels(cfg.Game.LevelsDir)
		if err != nil {
			logger.Fatal("loading levels", zap.Error(err))
		}
		reg, err := level.NewRegistry(levels)
		if err != nil {
			logger.Fatal("indexing levels", zap.Error(err))
		}
		lvl, ok := reg.Level(cfg.Game.Level)
		if !ok {
			logger.Fatal("unknown level", zap.String("level", cfg.Game.Level))
		}
		opts.Level = lvl
	}

	var src rng.Source
	if cfg.Game.Seed != 0 {
		src = rng.NewSeededSource(cfg.Game.Seed)
	} else {
		src = rng.NewCryptoSource()
	}

	s, err := session.New(opts, rng.NewLoggedSource(src, logger), logger)
	if err != nil {
		logger.Fatal("starting session", zap.Error(err))
	}

	printLines(s.Intro())
	if reply, err := s.Handle("help"); err == nil {
		printLines(reply.Lines)
	}

	in := bufio.NewScanner(os.Stdin)
	for !s.Done() {
		printLines(s.Status())
		fmt.Printf("%s> ", s.Round().Current().Name)
		if !in.Scan() {
			break
		}
		reply, err := s.Handle(in.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		printLines(reply.Lines)
		if reply.Quit {
			return
		}
	}
	if err := in.Err(); err != nil {
		logger.Error("reading input", zap.Error(err))
	}
	printLines(s.Status())
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}
