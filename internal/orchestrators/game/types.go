package game

import (
	"time"

	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name  string
	Class string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// LoadCharacterInput defines the request for loading a saved character
type LoadCharacterInput struct {
	Name string
}

// LoadCharacterOutput defines the response for loading a saved character
type LoadCharacterOutput struct {
	Character *entities.Character
	SavedAt   time.Time
}

// SaveCharacterInput defines the request for saving a character
type SaveCharacterInput struct {
	Character *entities.Character
}

// SaveCharacterOutput defines the response for saving a character
type SaveCharacterOutput struct {
	SavedAt time.Time
}

// DeleteCharacterInput defines the request for deleting a saved character
type DeleteCharacterInput struct {
	Name string
}

// DeleteCharacterOutput defines the response for deleting a saved character
type DeleteCharacterOutput struct{}

// ListCharactersInput defines the request for listing saved characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing saved characters
type ListCharactersOutput struct {
	Names []string
}

// FightInput defines the request for fighting an enemy
type FightInput struct {
	Character *entities.Character
	Enemy     string
}

// FightOutput defines the outcome of a fight
type FightOutput struct {
	EncounterID string
	Enemy       string
	State       engine.EncounterState
	Rounds      int
	Turns       []engine.Turn
	// Rewards are zero unless the character won
	RewardXP     int
	RewardGold   int
	LevelsGained int
}

// ListItemsInput defines the request for browsing the item catalog
type ListItemsInput struct{}

// ListItemsOutput defines the item catalog in file order
type ListItemsOutput struct {
	Items []*entities.ItemDefinition
}

// BuyItemInput defines the request for buying an item
type BuyItemInput struct {
	Character *entities.Character
	ItemID    string
}

// BuyItemOutput defines the response for buying an item
type BuyItemOutput struct {
	Item *entities.ItemDefinition
}

// SellItemInput defines the request for selling an item
type SellItemInput struct {
	Character *entities.Character
	ItemID    string
}

// SellItemOutput defines the response for selling an item
type SellItemOutput struct {
	Item  *entities.ItemDefinition
	Price int
}

// UseItemInput defines the request for using a consumable
type UseItemInput struct {
	Character *entities.Character
	ItemID    string
}

// UseItemOutput defines the response for using a consumable
type UseItemOutput struct {
	Item           *entities.ItemDefinition
	HealthRestored int
}

// EquipItemInput defines the request for equipping a weapon or armor
type EquipItemInput struct {
	Character *entities.Character
	ItemID    string
}

// EquipItemOutput defines the response for equipping a weapon or armor
type EquipItemOutput struct {
	Item *entities.ItemDefinition
	Slot entities.ItemType
}

// AcceptQuestInput defines the request for accepting a quest
type AcceptQuestInput struct {
	Character *entities.Character
	QuestID   string
}

// AcceptQuestOutput defines the response for accepting a quest
type AcceptQuestOutput struct {
	Quest *entities.QuestDefinition
}

// CompleteQuestInput defines the request for completing a quest
type CompleteQuestInput struct {
	Character *entities.Character
	QuestID   string
}

// CompleteQuestOutput defines the response for completing a quest
type CompleteQuestOutput struct {
	Quest        *entities.QuestDefinition
	LevelsGained int
}

// AbandonQuestInput defines the request for abandoning a quest
type AbandonQuestInput struct {
	Character *entities.Character
	QuestID   string
}

// AbandonQuestOutput defines the response for abandoning a quest
type AbandonQuestOutput struct{}

// ListQuestsInput defines the request for the quest log
type ListQuestsInput struct {
	Character *entities.Character
}

// ListQuestsOutput is the character's quest log
type ListQuestsOutput struct {
	Available []*entities.QuestDefinition
	Active    []*entities.QuestDefinition
	Completed []*entities.QuestDefinition
}
