package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// ItemType is the category of an item definition
type ItemType string

// Item categories
const (
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
)

// ParseItemType converts a data-file type name into an ItemType
func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(strings.ToLower(strings.TrimSpace(s))); t {
	case ItemTypeConsumable, ItemTypeWeapon, ItemTypeArmor:
		return t, nil
	default:
		return "", errors.DataFormatf("unknown item type %q", s)
	}
}

// Stat is the closed set of character stats an effect can touch
type Stat int

// Stats addressable by item effects. StatUnknown keeps effects whose stat
// name this build does not know; applying one does nothing.
const (
	StatUnknown Stat = iota
	StatHealth
	StatMaxHealth
	StatStrength
	StatMagic
)

var statNames = map[string]Stat{
	"health":     StatHealth,
	"max_health": StatMaxHealth,
	"strength":   StatStrength,
	"magic":      StatMagic,
}

// String returns the data-file name of the stat
func (s Stat) String() string {
	for name, stat := range statNames {
		if stat == s {
			return name
		}
	}
	return "unknown"
}

// Effect is a parsed "stat:delta" item effect
type Effect struct {
	Stat  Stat
	Delta int
	// Raw is the effect string as written in the data file
	Raw string
}

// ParseEffect parses an effect string of the form "statName:integerDelta"
func ParseEffect(raw string) (Effect, error) {
	name, value, ok := strings.Cut(strings.TrimSpace(raw), ":")
	name = strings.ToLower(strings.TrimSpace(name))
	if !ok || name == "" {
		return Effect{}, errors.DataFormatf("effect %q must look like stat:value", raw)
	}

	delta, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return Effect{}, errors.DataFormatf("effect %q has a non-integer value", raw)
	}

	return Effect{
		Stat:  statNames[name],
		Delta: delta,
		Raw:   strings.TrimSpace(raw),
	}, nil
}

// String returns the effect in data-file form
func (e Effect) String() string {
	if e.Raw != "" {
		return e.Raw
	}
	return fmt.Sprintf("%s:%d", e.Stat, e.Delta)
}

// ItemDefinition is a read-only item from the static item table
type ItemDefinition struct {
	ID          string
	Name        string
	Type        ItemType
	Effect      Effect
	Cost        int
	Description string
}

// ItemCatalog is the id-indexed item table, kept in file order
type ItemCatalog struct {
	order []string
	byID  map[string]*ItemDefinition
}

// NewItemCatalog builds a catalog. Duplicate ids are rejected.
func NewItemCatalog(defs []*ItemDefinition) (*ItemCatalog, error) {
	c := &ItemCatalog{
		order: make([]string, 0, len(defs)),
		byID:  make(map[string]*ItemDefinition, len(defs)),
	}
	for _, def := range defs {
		if def == nil || def.ID == "" {
			return nil, errors.DataFormatf("item definition without an id")
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, errors.DataFormatf("duplicate item id %q", def.ID)
		}
		c.order = append(c.order, def.ID)
		c.byID[def.ID] = def
	}
	return c, nil
}

// Get looks up an item definition by id
func (c *ItemCatalog) Get(id string) (*ItemDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// All returns every definition in file order
func (c *ItemCatalog) All() []*ItemDefinition {
	out := make([]*ItemDefinition, len(c.order))
	for i, id := range c.order {
		out[i] = c.byID[id]
	}
	return out
}

// Len returns the number of definitions
func (c *ItemCatalog) Len() int {
	return len(c.order)
}
