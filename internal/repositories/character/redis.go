package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/quest-chronicles/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	characterIndexKey  = "characters"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// redisRecord is the JSON value stored under each character key
type redisRecord struct {
	Character *entities.Character `json:"character"`
	SavedAt   time.Time           `json:"saved_at"`
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateForSave(input.Character); err != nil {
		return nil, err
	}

	savedAt := r.clock.Now().UTC()
	data, err := json.Marshal(redisRecord{Character: input.Character, SavedAt: savedAt})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+input.Character.Name, data, 0)
	pipe.SAdd(ctx, characterIndexKey, input.Character.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	slog.DebugContext(ctx, "saved character to redis", "name", input.Character.Name)
	return &SaveOutput{SavedAt: savedAt}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.CharacterNotFoundf("no save found for %s", input.Name).
				WithMeta("name", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var record redisRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.WrapWithReason(err, errors.ReasonDataFormat, "failed to unmarshal character data")
	}
	if record.Character == nil {
		return nil, errors.DataFormatf("record for %s has no character", input.Name)
	}
	if err := validateRecord(record.Character); err != nil {
		slog.ErrorContext(ctx, "corrupt character record",
			"name", input.Name,
			"error", err.Error())
		return nil, err
	}
	if record.Character.Name != input.Name {
		return nil, errors.DataFormatf("record for %s holds character %s", input.Name, record.Character.Name).
			WithMeta("name", input.Name)
	}
	normalizeLists(record.Character)

	return &GetOutput{Character: record.Character, SavedAt: record.SavedAt}, nil
}

// normalizeLists maps JSON nulls back to empty sequences
func normalizeLists(c *entities.Character) {
	if c.Inventory == nil {
		c.Inventory = []string{}
	}
	if c.ActiveQuests == nil {
		c.ActiveQuests = []string{}
	}
	if c.CompletedQuests == nil {
		c.CompletedQuests = []string{}
	}
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, characterKeyPrefix+input.Name)
	pipe.SRem(ctx, characterIndexKey, input.Name)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if del.Val() == 0 {
		return nil, errors.CharacterNotFoundf("no save found for %s", input.Name).
			WithMeta("name", input.Name)
	}

	slog.DebugContext(ctx, "deleted character from redis", "name", input.Name)
	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, characterIndexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read character index",
			"index_key", characterIndexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	sort.Strings(names)

	slog.DebugContext(ctx, "listed characters from redis", "count", len(names))
	return &ListOutput{Names: names}, nil
}
