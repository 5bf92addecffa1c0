// Package gamedata loads the static item and quest tables from YAML. When no
// data directory is configured the tables embedded in the binary are used.
package gamedata

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Data file names inside the data directory
const (
	ItemsFile  = "items.yaml"
	QuestsFile = "quests.yaml"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// Config selects where the tables are read from
type Config struct {
	// Dir overrides the embedded tables when set
	Dir string
}

// Data is the loaded static game data
type Data struct {
	Items  *entities.ItemCatalog
	Quests *entities.QuestBook
}

// Load reads both tables from the configured source
func Load(ctx context.Context, cfg *Config) (*Data, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	source, err := cfg.source()
	if err != nil {
		return nil, err
	}
	return LoadFS(ctx, source)
}

func (cfg *Config) source() (fs.FS, error) {
	if cfg.Dir == "" {
		sub, err := fs.Sub(defaults, "defaults")
		if err != nil {
			return nil, errors.Wrap(err, "failed to open embedded game data")
		}
		return sub, nil
	}

	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, errors.MissingDataFilef("data directory %s: %v", cfg.Dir, err).
			WithMeta("dir", cfg.Dir)
	}
	if !info.IsDir() {
		return nil, errors.MissingDataFilef("data directory %s is not a directory", cfg.Dir).
			WithMeta("dir", cfg.Dir)
	}
	return os.DirFS(cfg.Dir), nil
}

// LoadFS reads items.yaml and quests.yaml from fsys
func LoadFS(ctx context.Context, fsys fs.FS) (*Data, error) {
	itemsRaw, err := readFile(fsys, ItemsFile)
	if err != nil {
		return nil, err
	}
	items, err := ParseItems(itemsRaw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", ItemsFile)
	}

	questsRaw, err := readFile(fsys, QuestsFile)
	if err != nil {
		return nil, err
	}
	quests, err := ParseQuests(questsRaw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", QuestsFile)
	}

	slog.DebugContext(ctx, "loaded game data",
		"items", items.Len(),
		"quests", quests.Len())

	return &Data{Items: items, Quests: quests}, nil
}

func readFile(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.MissingDataFilef("data file %s not found", name).
				WithMeta("file", name)
		}
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	return data, nil
}
