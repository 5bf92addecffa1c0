package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// lookupItem resolves an item id against the catalog
func (o *orchestrator) lookupItem(itemID string) (*entities.ItemDefinition, error) {
	def, ok := o.items.Get(itemID)
	if !ok {
		return nil, errors.ItemNotFoundf("unknown item: %s", itemID).WithMeta("item_id", itemID)
	}
	return def, nil
}

func (o *orchestrator) ListItems(_ context.Context, _ *ListItemsInput) (*ListItemsOutput, error) {
	return &ListItemsOutput{Items: o.items.All()}, nil
}

func (o *orchestrator) BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	def, err := o.lookupItem(input.ItemID)
	if err != nil {
		return nil, err
	}
	if err := o.engine.Purchase(input.Character, def); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item purchased",
		"character", input.Character.Name,
		"item_id", def.ID,
		"gold", input.Character.Gold)

	return &BuyItemOutput{Item: def}, nil
}

func (o *orchestrator) SellItem(ctx context.Context, input *SellItemInput) (*SellItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	def, err := o.lookupItem(input.ItemID)
	if err != nil {
		return nil, err
	}
	price, err := o.engine.Sell(input.Character, def)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item sold",
		"character", input.Character.Name,
		"item_id", def.ID,
		"price", price)

	return &SellItemOutput{Item: def, Price: price}, nil
}

func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	def, err := o.lookupItem(input.ItemID)
	if err != nil {
		return nil, err
	}
	restored, err := o.engine.Use(input.Character, def)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item used",
		"character", input.Character.Name,
		"item_id", def.ID,
		"restored", restored)

	return &UseItemOutput{Item: def, HealthRestored: restored}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	def, err := o.lookupItem(input.ItemID)
	if err != nil {
		return nil, err
	}
	if !input.Character.HasItem(def.ID) {
		return nil, errors.ItemNotFoundf("item not in inventory: %s", def.ID).WithMeta("item_id", def.ID)
	}

	switch def.Type {
	case entities.ItemTypeWeapon:
		err = o.engine.EquipWeapon(input.Character, def)
	case entities.ItemTypeArmor:
		err = o.engine.EquipArmor(input.Character, def)
	default:
		err = errors.InvalidItemTypef("%s cannot be equipped", def.Name).WithMeta("item_id", def.ID)
	}
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "item equipped",
		"character", input.Character.Name,
		"item_id", def.ID,
		"slot", string(def.Type))

	return &EquipItemOutput{Item: def, Slot: def.Type}, nil
}
