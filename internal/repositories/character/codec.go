package character

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Save file keys, in the order they are written
const (
	keyName            = "name"
	keyClass           = "class"
	keyLevel           = "level"
	keyExperience      = "experience"
	keyHealth          = "health"
	keyMaxHealth       = "max_health"
	keyStrength        = "strength"
	keyMagic           = "magic"
	keyGold            = "gold"
	keyInventory       = "inventory"
	keyActiveQuests    = "active_quests"
	keyCompletedQuests = "completed_quests"
	keyEquippedWeapon  = "equipped_weapon"
	keyEquippedArmor   = "equipped_armor"
	keySavedAt         = "saved_at"
)

var recordKeys = []string{
	keyName, keyClass, keyLevel, keyExperience, keyHealth, keyMaxHealth,
	keyStrength, keyMagic, keyGold, keyInventory, keyActiveQuests,
	keyCompletedQuests, keyEquippedWeapon, keyEquippedArmor, keySavedAt,
}

// encodeRecord writes one key=value line per field
func encodeRecord(c *entities.Character, savedAt time.Time) []byte {
	values := map[string]string{
		keyName:            c.Name,
		keyClass:           string(c.Class),
		keyLevel:           strconv.Itoa(c.Level),
		keyExperience:      strconv.Itoa(c.Experience),
		keyHealth:          strconv.Itoa(c.Health),
		keyMaxHealth:       strconv.Itoa(c.MaxHealth),
		keyStrength:        strconv.Itoa(c.Strength),
		keyMagic:           strconv.Itoa(c.Magic),
		keyGold:            strconv.Itoa(c.Gold),
		keyInventory:       strings.Join(c.Inventory, listSeparator),
		keyActiveQuests:    strings.Join(c.ActiveQuests, listSeparator),
		keyCompletedQuests: strings.Join(c.CompletedQuests, listSeparator),
		keyEquippedWeapon:  c.EquippedWeapon,
		keyEquippedArmor:   c.EquippedArmor,
		keySavedAt:         savedAt.UTC().Format(time.RFC3339Nano),
	}

	var b strings.Builder
	for _, key := range recordKeys {
		fmt.Fprintf(&b, "%s=%s\n", key, values[key])
	}
	return []byte(b.String())
}

// decodeRecord parses a save file. Every known key must appear exactly once
// and nothing else may appear.
func decodeRecord(data []byte) (*entities.Character, time.Time, error) {
	known := make(map[string]bool, len(recordKeys))
	for _, key := range recordKeys {
		known[key] = true
	}

	values := make(map[string]string, len(recordKeys))
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, time.Time{}, errors.DataFormatf("line %d: expected key=value", i+1)
		}
		if !known[key] {
			return nil, time.Time{}, errors.DataFormatf("line %d: unknown key %q", i+1, key)
		}
		if _, dup := values[key]; dup {
			return nil, time.Time{}, errors.DataFormatf("line %d: duplicate key %q", i+1, key)
		}
		values[key] = value
	}
	for _, key := range recordKeys {
		if _, ok := values[key]; !ok {
			return nil, time.Time{}, errors.DataFormatf("missing key %q", key)
		}
	}

	p := &recordParser{values: values}
	c := &entities.Character{
		Name:            values[keyName],
		Class:           entities.Class(values[keyClass]),
		Level:           p.int(keyLevel),
		Experience:      p.int(keyExperience),
		Health:          p.int(keyHealth),
		MaxHealth:       p.int(keyMaxHealth),
		Strength:        p.int(keyStrength),
		Magic:           p.int(keyMagic),
		Gold:            p.int(keyGold),
		Inventory:       splitList(values[keyInventory]),
		ActiveQuests:    splitList(values[keyActiveQuests]),
		CompletedQuests: splitList(values[keyCompletedQuests]),
		EquippedWeapon:  values[keyEquippedWeapon],
		EquippedArmor:   values[keyEquippedArmor],
	}
	if p.err != nil {
		return nil, time.Time{}, p.err
	}

	savedAt, err := time.Parse(time.RFC3339Nano, values[keySavedAt])
	if err != nil {
		return nil, time.Time{}, errors.DataFormatf("saved_at: %v", err)
	}

	if err := validateRecord(c); err != nil {
		return nil, time.Time{}, err
	}
	return c, savedAt, nil
}

// recordParser keeps the first integer parse failure
type recordParser struct {
	values map[string]string
	err    error
}

func (p *recordParser) int(key string) int {
	if p.err != nil {
		return 0
	}
	n, err := strconv.Atoi(p.values[key])
	if err != nil {
		p.err = errors.DataFormatf("%s: %q is not an integer", key, p.values[key])
		return 0
	}
	return n
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, listSeparator)
}
