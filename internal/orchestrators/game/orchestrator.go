// Package game implements the game orchestrator: it looks up static
// definitions, applies the engine rules to the session's character, and
// talks to the character repository.
package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
)

// DefaultStarterKit is granted to every new character
var DefaultStarterKit = []string{"healing_potion"}

// Service defines the interface for game operations. Operations that take a
// character mutate it in place; nothing is persisted until SaveCharacter.
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// Fight resolves a full encounter and pays the enemy's reward on victory
	Fight(ctx context.Context, input *FightInput) (*FightOutput, error)

	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error)
	SellItem(ctx context.Context, input *SellItemInput) (*SellItemOutput, error)
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)
	// EquipItem equips a weapon or armor depending on the item's type
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error)
	CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error)
	AbandonQuest(ctx context.Context, input *AbandonQuestInput) (*AbandonQuestOutput, error)
	ListQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  characterrepo.Repository
	Items       *entities.ItemCatalog
	Quests      *entities.QuestBook
	IDGenerator idgen.Generator
	// StarterKit defaults to DefaultStarterKit when nil
	StarterKit []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Quests == nil {
		vb.RequiredField("Quests")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	repo       characterrepo.Repository
	items      *entities.ItemCatalog
	quests     *entities.QuestBook
	idGen      idgen.Generator
	starterKit []string
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	kit := cfg.StarterKit
	if kit == nil {
		kit = DefaultStarterKit
	}

	return &orchestrator{
		engine:     cfg.Engine,
		repo:       cfg.Repository,
		items:      cfg.Items,
		quests:     cfg.Quests,
		idGen:      cfg.IDGenerator,
		starterKit: append([]string(nil), kit...),
	}, nil
}

func (o *orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.engine.CreateCharacter(input.Name, entities.Class(input.Class))
	if err != nil {
		return nil, err
	}

	for _, itemID := range o.starterKit {
		// kit entries missing from this catalog are skipped
		if _, ok := o.items.Get(itemID); !ok {
			slog.WarnContext(ctx, "starter item not in catalog", "item_id", itemID)
			continue
		}
		if err := o.engine.Insert(c, itemID); err != nil {
			return nil, errors.Wrapf(err, "failed to grant starter item %s", itemID)
		}
	}

	slog.InfoContext(ctx, "character created",
		"name", c.Name,
		"class", c.Class)

	return &CreateCharacterOutput{Character: c}, nil
}

func (o *orchestrator) LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.Get(ctx, characterrepo.GetInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", input.Name)
	}

	slog.InfoContext(ctx, "character loaded",
		"name", out.Character.Name,
		"saved_at", out.SavedAt)

	return &LoadCharacterOutput{Character: out.Character, SavedAt: out.SavedAt}, nil
}

func (o *orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	out, err := o.repo.Save(ctx, characterrepo.SaveInput{Character: input.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", input.Character.Name)
	}

	slog.InfoContext(ctx, "character saved", "name", input.Character.Name)
	return &SaveCharacterOutput{SavedAt: out.SavedAt}, nil
}

func (o *orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.repo.Delete(ctx, characterrepo.DeleteInput{Name: input.Name}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s", input.Name)
	}

	slog.InfoContext(ctx, "character deleted", "name", input.Name)
	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) ListCharacters(
	ctx context.Context,
	_ *ListCharactersInput,
) (*ListCharactersOutput, error) {
	out, err := o.repo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return &ListCharactersOutput{Names: out.Names}, nil
}
