// Package main provides the arena binary: a terminal turn-based combat game
// where one hero fights a roster of monsters.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/duskhall/arena/internal/config"
	"github.com/duskhall/arena/internal/frontend/console"
	"github.com/duskhall/arena/internal/game/bestiary"
	"github.com/duskhall/arena/internal/game/character"
	"github.com/duskhall/arena/internal/game/roll"
	"github.com/duskhall/arena/internal/game/session"
	"github.com/duskhall/arena/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	playerName := flag.String("name", "", "player character name; overrides the config")
	seed := flag.Int64("seed", 0, "randomness seed for reproducible runs; overrides the config, 0 = crypto source")
	bestiaryDir := flag.String("bestiary", "", "directory of enemy template YAML files; overrides the config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *playerName != "" {
		cfg.Game.PlayerName = *playerName
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *bestiaryDir != "" {
		cfg.Game.BestiaryDir = *bestiaryDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var src roll.Source
	if cfg.Game.Seed != 0 {
		src = roll.NewSeededSource(cfg.Game.Seed)
		logger.Info("using seeded randomness", zap.Int64("seed", cfg.Game.Seed))
	} else {
		src = roll.NewCryptoSource()
	}
	src = roll.NewLoggedSource(src, logger)

	roster, err := loadRoster(cfg.Game.BestiaryDir)
	if err != nil {
		logger.Fatal("building enemy roster", zap.Error(err))
	}

	player, err := character.NewPlayer(cfg.Game.PlayerName)
	if err != nil {
		logger.Fatal("creating player", zap.Error(err))
	}

	sess := session.NewSession(player, roster, src,
		session.WithLogger(logger),
		session.WithRestHeal(cfg.Game.RestHeal),
		session.WithSpecialOdds(cfg.Game.SpecialOdds),
	)

	ui := console.New(sess, os.Stdin, os.Stdout,
		console.WithPace(time.Duration(cfg.Game.PaceMs)*time.Millisecond),
		console.WithColor(cfg.Game.Color),
		console.WithLogger(logger),
	)

	logger.Info("combat started",
		zap.String("player", player.Name()),
		zap.Int("enemies", len(roster)),
	)

	state, err := ui.Run()
	if err != nil {
		logger.Fatal("running combat", zap.Error(err))
	}
	logger.Info("combat finished", zap.Stringer("outcome", state))
}

// loadRoster spawns enemies from the bestiary dir, falling back to the stock
// lineup when no dir is configured.
func loadRoster(dir string) ([]*character.Character, error) {
	if dir == "" {
		return bestiary.DefaultRoster()
	}
	templates, err := bestiary.LoadTemplates(dir)
	if err != nil {
		return nil, err
	}
	return bestiary.SpawnRoster(templates)
}
