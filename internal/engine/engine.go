// Package engine implements the game rules: character progression, the
// bounded inventory, the quest ledger, and turn-based combat.
//
// Every operation validates all of its failure conditions before it touches
// the character, so a returned error always leaves the record unchanged.
package engine

import (
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Default rule constants
const (
	DefaultInventoryCapacity   = 20
	DefaultStartingGold        = 50
	DefaultXPPerLevel          = 100
	DefaultPlayerCriticalEvery = 3
	MaxNameLength              = 32
)

// Config holds the rule tables the engine runs on
type Config struct {
	Classes map[entities.Class]entities.ClassProfile
	Enemies map[string]entities.EnemyTemplate

	InventoryCapacity int
	StartingGold      int
	XPPerLevel        int
	// PlayerCriticalEvery doubles player damage on every Nth player turn
	PlayerCriticalEvery int
}

// DefaultConfig returns the stock rules
func DefaultConfig() *Config {
	return &Config{
		Classes:             entities.DefaultClassProfiles(),
		Enemies:             entities.DefaultEnemies(),
		InventoryCapacity:   DefaultInventoryCapacity,
		StartingGold:        DefaultStartingGold,
		XPPerLevel:          DefaultXPPerLevel,
		PlayerCriticalEvery: DefaultPlayerCriticalEvery,
	}
}

// Validate ensures the rule tables can drive a game to completion
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateMin("inventory_capacity", cfg.InventoryCapacity, 1, vb)
	errors.ValidateMin("starting_gold", cfg.StartingGold, 0, vb)
	errors.ValidateMin("xp_per_level", cfg.XPPerLevel, 1, vb)
	errors.ValidateMin("player_critical_every", cfg.PlayerCriticalEvery, 0, vb)

	for _, class := range entities.Classes {
		profile, ok := cfg.Classes[class]
		if !ok {
			vb.Fieldf("classes", "missing profile for %s", class)
			continue
		}
		if profile.Base.MaxHealth <= 0 {
			vb.Fieldf("classes", "%s must start with positive max health", class)
		}
		if profile.Base.Strength < 0 || profile.Base.Magic < 0 {
			vb.Fieldf("classes", "%s base stats cannot be negative", class)
		}
		if profile.LevelUp.MaxHealth < 0 || profile.LevelUp.Strength < 0 || profile.LevelUp.Magic < 0 {
			vb.Fieldf("classes", "%s level-up deltas cannot be negative", class)
		}
	}

	if len(cfg.Enemies) == 0 {
		vb.RequiredField("enemies")
	}
	for name, enemy := range cfg.Enemies {
		// a zero-strength enemy could face a zero-strength character forever
		if enemy.Health <= 0 || enemy.Strength <= 0 {
			vb.Fieldf("enemies", "%s needs positive health and strength", name)
		}
		if enemy.CriticalEvery < 0 || enemy.RewardXP < 0 || enemy.RewardGold < 0 {
			vb.Fieldf("enemies", "%s has a negative critical cadence or reward", name)
		}
	}

	return vb.Build()
}

// Rules applies the game rules to a character record. It holds no
// per-character state; the caller owns the record and serializes access.
type Rules struct {
	classes map[entities.Class]entities.ClassProfile
	enemies map[string]entities.EnemyTemplate

	capacity      int
	startingGold  int
	xpPerLevel    int
	criticalEvery int
}

// New creates an engine from validated rules
func New(cfg *Config) (*Rules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	classes := make(map[entities.Class]entities.ClassProfile, len(cfg.Classes))
	for k, v := range cfg.Classes {
		classes[k] = v
	}
	enemies := make(map[string]entities.EnemyTemplate, len(cfg.Enemies))
	for k, v := range cfg.Enemies {
		enemies[normalizeEnemyName(k)] = v
	}

	return &Rules{
		classes:       classes,
		enemies:       enemies,
		capacity:      cfg.InventoryCapacity,
		startingGold:  cfg.StartingGold,
		xpPerLevel:    cfg.XPPerLevel,
		criticalEvery: cfg.PlayerCriticalEvery,
	}, nil
}

// InventoryCapacity returns the maximum number of inventory slots
func (e *Rules) InventoryCapacity() int {
	return e.capacity
}

// XPPerLevel returns the experience needed to advance one level
func (e *Rules) XPPerLevel() int {
	return e.xpPerLevel
}

func requireCharacter(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument("character cannot be nil")
	}
	return nil
}
