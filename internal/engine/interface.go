package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/quest-chronicles/internal/engine Engine

import "github.com/KirkDiggler/quest-chronicles/internal/entities"

// Engine provides the game rules applied to a character record
type Engine interface {
	// Character progression
	CreateCharacter(name string, class entities.Class) (*entities.Character, error)
	GainExperience(c *entities.Character, amount int) (int, error)
	Heal(c *entities.Character, amount int) (int, error)
	AdjustGold(c *entities.Character, delta int) error

	// Inventory
	Insert(c *entities.Character, itemID string) error
	Remove(c *entities.Character, itemID string) error
	Purchase(c *entities.Character, item *entities.ItemDefinition) error
	Use(c *entities.Character, item *entities.ItemDefinition) (int, error)
	EquipWeapon(c *entities.Character, item *entities.ItemDefinition) error
	EquipArmor(c *entities.Character, item *entities.ItemDefinition) error
	Sell(c *entities.Character, item *entities.ItemDefinition) (int, error)

	// Quest ledger
	AcceptQuest(c *entities.Character, questID string, book *entities.QuestBook) error
	CompleteQuest(c *entities.Character, questID string, book *entities.QuestBook) (*QuestCompletion, error)
	AbandonQuest(c *entities.Character, questID string) error
	ListAvailableQuests(c *entities.Character, book *entities.QuestBook) []string
	ListActiveQuests(c *entities.Character) []string
	ListCompletedQuests(c *entities.Character) []string

	// Combat
	Enemies() []string
	NewEncounter(c *entities.Character, enemyName string) (*Encounter, error)
	ResolveEncounter(c *entities.Character, enemyName string) (*Encounter, error)

	// Rule constants
	InventoryCapacity() int
	XPPerLevel() int
}

var _ Engine = (*Rules)(nil)
