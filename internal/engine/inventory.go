package engine

import (
	"slices"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Insert adds one copy of itemID to the end of the inventory
func (e *Rules) Insert(c *entities.Character, itemID string) error {
	if err := requireCharacter(c); err != nil {
		return err
	}
	if err := e.checkCapacity(c); err != nil {
		return err
	}

	c.Inventory = append(c.Inventory, itemID)
	return nil
}

func (e *Rules) checkCapacity(c *entities.Character) error {
	if len(c.Inventory) >= e.capacity {
		return errors.InventoryFullf("inventory is full (%d/%d)", len(c.Inventory), e.capacity).
			WithMeta("capacity", e.capacity)
	}
	return nil
}

// Remove drops the first copy of itemID from the inventory
func (e *Rules) Remove(c *entities.Character, itemID string) error {
	if err := requireCharacter(c); err != nil {
		return err
	}
	if err := requireItem(c, itemID); err != nil {
		return err
	}

	removeItem(c, itemID)
	return nil
}

func requireItem(c *entities.Character, itemID string) error {
	if !c.HasItem(itemID) {
		return errors.ItemNotFoundf("item not in inventory: %s", itemID).
			WithMeta("item_id", itemID)
	}
	return nil
}

func removeItem(c *entities.Character, itemID string) {
	if i := slices.Index(c.Inventory, itemID); i >= 0 {
		c.Inventory = slices.Delete(c.Inventory, i, i+1)
	}
}

func requireDefinition(item *entities.ItemDefinition) error {
	if item == nil {
		return errors.InvalidArgument("item definition cannot be nil")
	}
	return nil
}

// Purchase buys one copy of item. Gold and capacity are both checked before
// anything changes, so a full inventory never costs gold.
func (e *Rules) Purchase(c *entities.Character, item *entities.ItemDefinition) error {
	if err := requireCharacter(c); err != nil {
		return err
	}
	if err := requireDefinition(item); err != nil {
		return err
	}
	if c.Gold < item.Cost {
		return errors.InsufficientGoldf("%s costs %d gold, have %d", item.Name, item.Cost, c.Gold).
			WithMeta("item_id", item.ID)
	}
	if err := e.checkCapacity(c); err != nil {
		return err
	}

	c.Gold -= item.Cost
	c.Inventory = append(c.Inventory, item.ID)
	return nil
}

// Use consumes item from the inventory. A health effect heals up to max
// health; any other effect does nothing but the item is still used up.
// It returns the health restored.
func (e *Rules) Use(c *entities.Character, item *entities.ItemDefinition) (int, error) {
	if err := requireCharacter(c); err != nil {
		return 0, err
	}
	if err := requireDefinition(item); err != nil {
		return 0, err
	}
	if err := requireItem(c, item.ID); err != nil {
		return 0, err
	}
	if item.Type != entities.ItemTypeConsumable {
		return 0, errors.InvalidItemTypef("%s is a %s, not a consumable", item.Name, item.Type).
			WithMeta("item_id", item.ID)
	}

	restored := 0
	if item.Effect.Stat == entities.StatHealth && item.Effect.Delta > 0 {
		restored = restoreHealth(c, item.Effect.Delta)
	}

	removeItem(c, item.ID)
	return restored, nil
}

// EquipWeapon applies a weapon's bonus and records it as the equipped
// weapon. Bonuses stack: the previous weapon's bonus is not taken back.
func (e *Rules) EquipWeapon(c *entities.Character, item *entities.ItemDefinition) error {
	return e.equip(c, item, entities.ItemTypeWeapon)
}

// EquipArmor applies an armor's bonus and records it as the equipped armor.
// Bonuses stack the same way weapons do.
func (e *Rules) EquipArmor(c *entities.Character, item *entities.ItemDefinition) error {
	return e.equip(c, item, entities.ItemTypeArmor)
}

func (e *Rules) equip(c *entities.Character, item *entities.ItemDefinition, want entities.ItemType) error {
	if err := requireCharacter(c); err != nil {
		return err
	}
	if err := requireDefinition(item); err != nil {
		return err
	}
	if err := requireItem(c, item.ID); err != nil {
		return err
	}
	if item.Type != want {
		return errors.InvalidItemTypef("%s is a %s, not a %s", item.Name, item.Type, want).
			WithMeta("item_id", item.ID)
	}

	applyEquipmentEffect(c, item.Effect)

	switch want {
	case entities.ItemTypeWeapon:
		c.EquippedWeapon = item.ID
	case entities.ItemTypeArmor:
		c.EquippedArmor = item.ID
	}
	return nil
}

// applyEquipmentEffect ignores negative deltas so stats stay non-negative
// and max health never shrinks
func applyEquipmentEffect(c *entities.Character, effect entities.Effect) {
	if effect.Delta <= 0 {
		return
	}

	switch effect.Stat {
	case entities.StatStrength:
		c.Strength = addSat(c.Strength, effect.Delta)
	case entities.StatMagic:
		c.Magic = addSat(c.Magic, effect.Delta)
	case entities.StatMaxHealth:
		c.MaxHealth = addSat(c.MaxHealth, effect.Delta)
		c.Health = addSat(c.Health, effect.Delta)
	case entities.StatHealth:
		restoreHealth(c, effect.Delta)
	}
}

// Sell removes one copy of item and pays half its cost, rounded down.
// Selling the equipped copy clears the slot; its bonus stays.
func (e *Rules) Sell(c *entities.Character, item *entities.ItemDefinition) (int, error) {
	if err := requireCharacter(c); err != nil {
		return 0, err
	}
	if err := requireDefinition(item); err != nil {
		return 0, err
	}
	if err := requireItem(c, item.ID); err != nil {
		return 0, err
	}

	price := item.Cost / 2
	removeItem(c, item.ID)
	c.Gold = addSat(c.Gold, price)

	if !c.HasItem(item.ID) {
		if c.EquippedWeapon == item.ID {
			c.EquippedWeapon = ""
		}
		if c.EquippedArmor == item.ID {
			c.EquippedArmor = ""
		}
	}
	return price, nil
}
