package character

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
)

// SaveFileExtension is appended to the character name to form its file name
const SaveFileExtension = ".save"

type fileRepository struct {
	dir   string
	clock clock.Clock
}

// FileConfig contains configuration for the file character repository.
type FileConfig struct {
	// Dir holds one save file per character
	Dir   string
	Clock clock.Clock
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a character repository that keeps each character in its
// own key=value save file
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &fileRepository{
		dir:   cfg.Dir,
		clock: c,
	}, nil
}

func (r *fileRepository) path(name string) string {
	return filepath.Join(r.dir, name+SaveFileExtension)
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateForSave(input.Character); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", r.dir)
	}

	savedAt := r.clock.Now()
	data := encodeRecord(input.Character, savedAt)

	// write a sibling temp file then rename so a reader never sees half a record
	tmp, err := os.CreateTemp(r.dir, input.Character.Name+".*.tmp")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, errors.Wrapf(err, "failed to write character %s", input.Character.Name)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to write character %s", input.Character.Name)
	}
	if err := os.Rename(tmp.Name(), r.path(input.Character.Name)); err != nil {
		return nil, errors.Wrapf(err, "failed to replace save for %s", input.Character.Name)
	}

	slog.DebugContext(ctx, "saved character",
		"name", input.Character.Name,
		"path", r.path(input.Character.Name))

	return &SaveOutput{SavedAt: savedAt}, nil
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(input.Name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.CharacterNotFoundf("no save found for %s", input.Name).
				WithMeta("name", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to read save for %s", input.Name)
	}

	c, savedAt, err := decodeRecord(data)
	if err != nil {
		slog.ErrorContext(ctx, "corrupt save file",
			"name", input.Name,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to load %s", input.Name)
	}
	if c.Name != input.Name {
		return nil, errors.DataFormatf("save for %s holds character %s", input.Name, c.Name)
	}

	return &GetOutput{Character: c, SavedAt: savedAt}, nil
}

func (r *fileRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	if err := os.Remove(r.path(input.Name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.CharacterNotFoundf("no save found for %s", input.Name).
				WithMeta("name", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to delete save for %s", input.Name)
	}

	slog.DebugContext(ctx, "deleted character", "name", input.Name)
	return &DeleteOutput{}, nil
}

func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ListOutput{Names: []string{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to read save directory %s", r.dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SaveFileExtension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), SaveFileExtension))
	}
	sort.Strings(names)

	slog.DebugContext(ctx, "listed characters", "dir", r.dir, "count", len(names))
	return &ListOutput{Names: names}, nil
}
