package entities

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCharacter is the toolkit entity type of player characters
const EntityTypeCharacter = "character"

// Character is the single mutable player record. Every game component reads
// and writes it; the persistence layer stores it whole.
type Character struct {
	Name            string   `json:"name"`
	Class           Class    `json:"class"`
	Level           int      `json:"level"`
	Experience      int      `json:"experience"`
	Health          int      `json:"health"`
	MaxHealth       int      `json:"max_health"`
	Strength        int      `json:"strength"`
	Magic           int      `json:"magic"`
	Gold            int      `json:"gold"`
	Inventory       []string `json:"inventory"`
	ActiveQuests    []string `json:"active_quests"`
	CompletedQuests []string `json:"completed_quests"`
	EquippedWeapon  string   `json:"equipped_weapon,omitempty"`
	EquippedArmor   string   `json:"equipped_armor,omitempty"`
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character name, which keys its save record
func (c *Character) GetID() string {
	return c.Name
}

// GetType returns the toolkit entity type
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// IsAlive reports whether the character has any health left
func (c *Character) IsAlive() bool {
	return c.Health > 0
}

// HasItem reports whether itemID is anywhere in the inventory
func (c *Character) HasItem(itemID string) bool {
	return slices.Contains(c.Inventory, itemID)
}

// IsQuestActive reports whether questID is in the active set
func (c *Character) IsQuestActive(questID string) bool {
	return slices.Contains(c.ActiveQuests, questID)
}

// IsQuestCompleted reports whether questID is in the completed set
func (c *Character) IsQuestCompleted(questID string) bool {
	return slices.Contains(c.CompletedQuests, questID)
}

// Clone returns a deep copy of the character
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Inventory = slices.Clone(c.Inventory)
	out.ActiveQuests = slices.Clone(c.ActiveQuests)
	out.CompletedQuests = slices.Clone(c.CompletedQuests)
	return &out
}

// Describe renders the character sheet shown by the CLI
func (c *Character) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Class: %s\n", c.Class)
	fmt.Fprintf(&b, "Level: %d\n", c.Level)
	fmt.Fprintf(&b, "HP: %d/%d\n", c.Health, c.MaxHealth)
	fmt.Fprintf(&b, "Strength: %d\n", c.Strength)
	fmt.Fprintf(&b, "Magic: %d\n", c.Magic)
	fmt.Fprintf(&b, "XP: %d\n", c.Experience)
	fmt.Fprintf(&b, "Gold: %d", c.Gold)
	if c.EquippedWeapon != "" {
		fmt.Fprintf(&b, "\nWeapon: %s", c.EquippedWeapon)
	}
	if c.EquippedArmor != "" {
		fmt.Fprintf(&b, "\nArmor: %s", c.EquippedArmor)
	}
	return b.String()
}
