package character

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Cache defaults
const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 5 * time.Minute
)

type cachedEntry struct {
	character *entities.Character
	savedAt   time.Time
}

type cachedRepository struct {
	next Repository
	lru  *expirable.LRU[string, *cachedEntry]
}

// CachedConfig contains configuration for the caching decorator.
type CachedConfig struct {
	Repository Repository
	// Size is the maximum number of cached characters
	Size int
	TTL  time.Duration
}

// Validate validates the CachedConfig.
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Repository == nil {
		vb.RequiredField("repository")
	}
	errors.ValidateMin("size", cfg.Size, 0, vb)
	if cfg.TTL < 0 {
		vb.Field("ttl", "cannot be negative")
	}
	return vb.Build()
}

// NewCached wraps a repository with an in-memory LRU of loaded characters.
// Cached records are handed out as clones so callers cannot mutate them.
func NewCached(cfg *CachedConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	size := cfg.Size
	if size == 0 {
		size = DefaultCacheSize
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return &cachedRepository{
		next: cfg.Repository,
		lru:  expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}, nil
}

func (r *cachedRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character != nil {
		r.lru.Remove(input.Character.Name)
	}
	return r.next.Save(ctx, input)
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if entry, ok := r.lru.Get(input.Name); ok {
		slog.DebugContext(ctx, "character cache hit", "name", input.Name)
		return &GetOutput{Character: entry.character.Clone(), SavedAt: entry.savedAt}, nil
	}

	out, err := r.next.Get(ctx, input)
	if err != nil {
		return nil, err
	}

	r.lru.Add(input.Name, &cachedEntry{character: out.Character.Clone(), savedAt: out.SavedAt})
	return out, nil
}

func (r *cachedRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	r.lru.Remove(input.Name)
	return r.next.Delete(ctx, input)
}

func (r *cachedRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	return r.next.List(ctx, input)
}
