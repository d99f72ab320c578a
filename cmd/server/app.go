package main

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/card-forge/internal/clients/inference"
	"github.com/KirkDiggler/card-forge/internal/errors"
	cardsorch "github.com/KirkDiggler/card-forge/internal/orchestrators/cards"
	"github.com/KirkDiggler/card-forge/internal/orchestrators/printing"
	"github.com/KirkDiggler/card-forge/internal/pkg/clock"
	"github.com/KirkDiggler/card-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/card-forge/internal/pkg/random"
	redisclient "github.com/KirkDiggler/card-forge/internal/redis"
	"github.com/KirkDiggler/card-forge/internal/renderer"
	"github.com/KirkDiggler/card-forge/internal/repositories/namecache"
	"github.com/KirkDiggler/card-forge/internal/resources"
	"github.com/KirkDiggler/card-forge/internal/services/naming"
)

// app holds the wired services shared by the server and generate commands
type app struct {
	cards   cardsorch.Service
	factory random.Factory
	bus     *events.Bus

	// printing is nil when artwork generation is disabled
	printing printing.Service

	closers []func() error
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			slog.Warn("Shutdown step failed", "error", err)
		}
	}
}

func newApp(cfg *Config) (*app, error) {
	a := &app{factory: newRandomFactory(cfg), bus: events.NewBus()}
	cardsorch.SubscribeAudit(a.bus, nil)

	cache, err := a.newNameCache(cfg)
	if err != nil {
		return nil, err
	}

	pool := naming.DefaultPool()
	if cfg.NamesFile != "" {
		pool, err = naming.LoadPoolFile(cfg.NamesFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load ability names")
		}
	}

	var ai inference.Client
	if cfg.AI.Enabled {
		ai, err = inference.New(&inference.Config{
			Token:       cfg.AI.Token,
			BaseURL:     cfg.AI.BaseURL,
			ImageModel:  cfg.AI.ImageModel,
			MaxAttempts: cfg.AI.MaxAttempts,
			RetryDelay:  cfg.AI.RetryDelay,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create inference client")
		}
	}

	namingCfg := &naming.Config{
		Pool:      pool,
		TextModel: cfg.AI.TextModel,
		Cache:     cache,
	}
	if ai != nil {
		namingCfg.TextGenerator = ai
	}
	namer, err := naming.New(namingCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create naming service")
	}

	a.cards, err = cardsorch.NewOrchestrator(&cardsorch.Config{
		Naming:        namer,
		IDGenerator:   idgen.NewUUID("card"),
		RandomFactory: a.factory,
		Policy:        cfg.RandomPolicy,
		EventBus:      a.bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cards orchestrator")
	}

	if ai == nil {
		slog.Info("Artwork disabled, cards will not be rendered")
		return a, nil
	}

	provider, err := resources.NewFSProvider(&resources.Config{Dir: cfg.AssetsDir})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open assets")
	}

	cardRenderer, err := renderer.New(&renderer.Config{Resources: provider})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create renderer")
	}

	a.printing, err = printing.NewOrchestrator(&printing.Config{
		Artwork:  ai,
		Renderer: cardRenderer,
		Timeout:  cfg.ArtworkTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create printing orchestrator")
	}

	return a, nil
}

func newRandomFactory(cfg *Config) random.Factory {
	if cfg.Seed != 0 {
		slog.Info("Using seeded randomness", "seed", cfg.Seed, "policy", cfg.RandomPolicy)
		return random.NewSeededFactory(cfg.Seed)
	}
	return &random.DiceFactory{Roller: dice.DefaultRoller}
}

func (a *app) newNameCache(cfg *Config) (namecache.Repository, error) {
	if cfg.RedisAddr == "" {
		return namecache.NewMemoryRepository(&namecache.MemoryConfig{TTL: cfg.CacheTTL}), nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	a.closers = append(a.closers, client.Close)

	repo, err := namecache.NewRedisRepository(&namecache.Config{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.CacheTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create name cache")
	}

	slog.Info("Name cache backed by redis", "addr", cfg.RedisAddr)
	return repo, nil
}
