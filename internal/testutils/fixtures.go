package testutils

import (
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Thorin"

// CreateTestCharacter creates a fresh level 1 warrior with the stock stats
func CreateTestCharacter(name string) *entities.Character {
	return &entities.Character{
		Name:            name,
		Class:           entities.ClassWarrior,
		Level:           1,
		Health:          120,
		MaxHealth:       120,
		Strength:        15,
		Magic:           3,
		Gold:            50,
		Inventory:       []string{},
		ActiveQuests:    []string{},
		CompletedQuests: []string{},
	}
}

// CreateSeasonedCharacter creates a character that has been playing a while:
// duplicate items, equipped gear, quests in both sets
func CreateSeasonedCharacter(name string) *entities.Character {
	return &entities.Character{
		Name:            name,
		Class:           entities.ClassRogue,
		Level:           4,
		Experience:      63,
		Health:          41,
		MaxHealth:       130,
		Strength:        23,
		Magic:           6,
		Gold:            212,
		Inventory:       []string{"healing_potion", "iron_sword", "healing_potion", "leather_armor"},
		ActiveQuests:    []string{"bandit_camp"},
		CompletedQuests: []string{"cellar_rats", "lost_ring"},
		EquippedWeapon:  "iron_sword",
		EquippedArmor:   "leather_armor",
	}
}

// TestItems returns a small catalog covering every item type
func TestItems() []*entities.ItemDefinition {
	return []*entities.ItemDefinition{
		{
			ID:     "healing_potion",
			Name:   "Healing Potion",
			Type:   entities.ItemTypeConsumable,
			Effect: entities.Effect{Stat: entities.StatHealth, Delta: 20, Raw: "health:20"},
			Cost:   25,
		},
		{
			ID:     "iron_sword",
			Name:   "Iron Sword",
			Type:   entities.ItemTypeWeapon,
			Effect: entities.Effect{Stat: entities.StatStrength, Delta: 5, Raw: "strength:5"},
			Cost:   30,
		},
		{
			ID:     "leather_armor",
			Name:   "Leather Armor",
			Type:   entities.ItemTypeArmor,
			Effect: entities.Effect{Stat: entities.StatMaxHealth, Delta: 10, Raw: "max_health:10"},
			Cost:   20,
		},
	}
}

// TestQuests returns a two-step quest chain plus a level-gated quest
func TestQuests() []*entities.QuestDefinition {
	return []*entities.QuestDefinition{
		{ID: "cellar_rats", Title: "Cellar Rats", RewardXP: 50, RewardGold: 10, RequiredLevel: 1, Prerequisite: entities.NoPrerequisite},
		{ID: "bandit_camp", Title: "Bandit Camp", RewardXP: 120, RewardGold: 40, RequiredLevel: 1, Prerequisite: "cellar_rats"},
		{ID: "dragon_lair", Title: "Dragon Lair", RewardXP: 500, RewardGold: 300, RequiredLevel: 5, Prerequisite: entities.NoPrerequisite},
	}
}
