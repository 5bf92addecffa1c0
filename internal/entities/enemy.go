package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeEnemy is the toolkit entity type of combat opponents
const EntityTypeEnemy = "enemy"

// EnemyTemplate is one row of the enemy table
type EnemyTemplate struct {
	Name     string
	Health   int
	Strength int
	// CriticalEvery doubles the enemy's damage on every Nth enemy turn.
	// Zero means the enemy never lands a critical hit.
	CriticalEvery int
	RewardXP      int
	RewardGold    int
}

// Enemy is the per-encounter opponent. It is never persisted.
type Enemy struct {
	Name     string
	Health   int
	Strength int
}

var _ core.Entity = (*Enemy)(nil)

// NewEnemy instantiates a fresh enemy from its template
func NewEnemy(t EnemyTemplate) *Enemy {
	return &Enemy{
		Name:     t.Name,
		Health:   t.Health,
		Strength: t.Strength,
	}
}

// GetID returns the enemy name
func (e *Enemy) GetID() string {
	return e.Name
}

// GetType returns the toolkit entity type
func (e *Enemy) GetType() string {
	return EntityTypeEnemy
}

// DefaultEnemies returns the stock enemy table
func DefaultEnemies() map[string]EnemyTemplate {
	return map[string]EnemyTemplate{
		"goblin": {Name: "goblin", Health: 30, Strength: 5, RewardXP: 20, RewardGold: 10},
		"orc":    {Name: "orc", Health: 60, Strength: 10, RewardXP: 40, RewardGold: 25},
		"dragon": {Name: "dragon", Health: 120, Strength: 18, CriticalEvery: 2, RewardXP: 150, RewardGold: 100},
		"slime":  {Name: "slime", Health: 40, Strength: 4, RewardXP: 15, RewardGold: 5},
	}
}
