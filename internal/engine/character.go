package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// forbiddenNameChars would break the save file name or its record format
const forbiddenNameChars = "|,/\\\n\r"

// CreateCharacter builds a level 1 character from the class's base stats
func (e *Rules) CreateCharacter(name string, class entities.Class) (*entities.Character, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	profile, ok := e.classes[class]
	if !class.Valid() || !ok {
		return nil, errors.InvalidClassf("invalid class: %s", class).
			WithMeta("class", string(class))
	}

	return &entities.Character{
		Name:            name,
		Class:           class,
		Level:           1,
		Experience:      0,
		Health:          profile.Base.MaxHealth,
		MaxHealth:       profile.Base.MaxHealth,
		Strength:        profile.Base.Strength,
		Magic:           profile.Base.Magic,
		Gold:            e.startingGold,
		Inventory:       []string{},
		ActiveQuests:    []string{},
		CompletedQuests: []string{},
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return errors.InvalidNamef("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.InvalidNamef("name must be no more than %d characters", MaxNameLength)
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return errors.InvalidNamef("name %q contains a reserved character", name)
	}
	return nil
}

// GainExperience adds experience and applies every level-up it pays for.
// It returns the number of levels gained.
func (e *Rules) GainExperience(c *entities.Character, amount int) (int, error) {
	if err := requireCharacter(c); err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, errors.InvalidAmountf("experience amount cannot be negative: %d", amount)
	}
	if !c.IsAlive() {
		return 0, errors.CharacterDeadf("%s cannot gain experience while dead", c.Name)
	}

	return e.addExperience(c, amount), nil
}

// addExperience assumes the caller validated amount and liveness. Every
// level the total pays for is applied at once; stats saturate at math.MaxInt.
func (e *Rules) addExperience(c *entities.Character, amount int) int {
	total := addSat(c.Experience, amount)
	levels := total / e.xpPerLevel
	c.Experience = total % e.xpPerLevel

	if levels > 0 {
		e.levelUp(c, levels)
	}
	return levels
}

func (e *Rules) levelUp(c *entities.Character, levels int) {
	delta := e.classes[c.Class].LevelUp

	c.Level = addSat(c.Level, levels)
	c.MaxHealth = addSat(c.MaxHealth, mulSat(delta.MaxHealth, levels))
	c.Strength = addSat(c.Strength, mulSat(delta.Strength, levels))
	c.Magic = addSat(c.Magic, mulSat(delta.Magic, levels))
	c.Health = c.MaxHealth
}

// Heal restores health, never past max health. It returns the amount
// actually restored.
func (e *Rules) Heal(c *entities.Character, amount int) (int, error) {
	if err := requireCharacter(c); err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, errors.InvalidAmountf("heal amount cannot be negative: %d", amount)
	}

	return restoreHealth(c, amount), nil
}

func restoreHealth(c *entities.Character, amount int) int {
	if amount >= c.MaxHealth-c.Health {
		restored := c.MaxHealth - c.Health
		c.Health = c.MaxHealth
		return restored
	}
	c.Health += amount
	return amount
}

// AdjustGold adds delta to the balance. A negative delta spends gold.
func (e *Rules) AdjustGold(c *entities.Character, delta int) error {
	if err := requireCharacter(c); err != nil {
		return err
	}
	if delta < 0 && c.Gold+delta < 0 {
		return errors.InsufficientGoldf("need %d gold, have %d", -delta, c.Gold).
			WithMeta("gold", c.Gold)
	}

	c.Gold = addSat(c.Gold, delta)
	return nil
}
