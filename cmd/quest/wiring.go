package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/gamedata"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/game"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/quest-chronicles/internal/redis"
	characterrepo "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
)

// app is everything a command needs; Close releases the store
type app struct {
	game   game.Service
	data   *gamedata.Data
	engine engine.Engine
	closer io.Closer
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func newRepository(cfg *config.Config) (characterrepo.Repository, io.Closer, error) {
	var (
		repo   characterrepo.Repository
		closer io.Closer
		err    error
	)

	switch cfg.Store {
	case config.StoreRedis:
		client, cerr := redisclient.NewClient(cfg.RedisAddr, nil)
		if cerr != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", cerr)
		}
		closer = client
		repo, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	default:
		repo, err = characterrepo.NewFile(&characterrepo.FileConfig{Dir: cfg.SaveDir})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s repository: %w", cfg.Store, err)
	}

	if cfg.CacheSize > 0 {
		repo, err = characterrepo.NewCached(&characterrepo.CachedConfig{
			Repository: repo,
			Size:       cfg.CacheSize,
			TTL:        cfg.CacheTTL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create character cache: %w", err)
		}
	}
	return repo, closer, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	repo, closer, err := newRepository(cfg)
	if err != nil {
		return nil, err
	}
	return assembleApp(ctx, cfg, repo, closer)
}

// assembleApp builds the game on top of an open store; the store is closed
// when any later step fails
func assembleApp(
	ctx context.Context, cfg *config.Config, repo characterrepo.Repository, closer io.Closer,
) (_ *app, err error) {
	defer func() {
		if err != nil && closer != nil {
			if cerr := closer.Close(); cerr != nil {
				slog.WarnContext(ctx, "failed to close store", "error", cerr)
			}
		}
	}()

	eng, err := engine.New(engine.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	data, err := gamedata.Load(ctx, &gamedata.Config{Dir: cfg.DataDir})
	if err != nil {
		return nil, fmt.Errorf("failed to load game data: %w", err)
	}

	svc, err := game.NewOrchestrator(&game.Config{
		Engine:      eng,
		Repository:  repo,
		Items:       data.Items,
		Quests:      data.Quests,
		IDGenerator: idgen.NewUUID("enc"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game orchestrator: %w", err)
	}

	slog.DebugContext(ctx, "game ready",
		"store", cfg.Store,
		"items", data.Items.Len(),
		"quests", data.Quests.Len())

	return &app{game: svc, data: data, engine: eng, closer: closer}, nil
}
