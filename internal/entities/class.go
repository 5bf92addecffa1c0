package entities

// Class is one of the fixed character classes
type Class string

// Playable classes
const (
	ClassWarrior Class = "Warrior"
	ClassMage    Class = "Mage"
	ClassRogue   Class = "Rogue"
	ClassCleric  Class = "Cleric"
)

// Classes lists every playable class in menu order
var Classes = []Class{ClassWarrior, ClassMage, ClassRogue, ClassCleric}

// String returns the display name of the class
func (c Class) String() string {
	return string(c)
}

// Valid reports whether c is one of the playable classes
func (c Class) Valid() bool {
	switch c {
	case ClassWarrior, ClassMage, ClassRogue, ClassCleric:
		return true
	default:
		return false
	}
}

// StatBlock holds the three stats that classes define and grow
type StatBlock struct {
	MaxHealth int `json:"max_health"`
	Strength  int `json:"strength"`
	Magic     int `json:"magic"`
}

// ClassProfile is the base stat line a class starts with and what it gains
// on every level-up
type ClassProfile struct {
	Base    StatBlock `json:"base"`
	LevelUp StatBlock `json:"level_up"`
}

// DefaultClassProfiles returns the stock class table
func DefaultClassProfiles() map[Class]ClassProfile {
	return map[Class]ClassProfile{
		ClassWarrior: {
			Base:    StatBlock{MaxHealth: 120, Strength: 15, Magic: 3},
			LevelUp: StatBlock{MaxHealth: 15, Strength: 3},
		},
		ClassMage: {
			Base:    StatBlock{MaxHealth: 80, Strength: 4, Magic: 18},
			LevelUp: StatBlock{MaxHealth: 8, Magic: 4},
		},
		ClassRogue: {
			Base:    StatBlock{MaxHealth: 100, Strength: 12, Magic: 6},
			LevelUp: StatBlock{MaxHealth: 10, Strength: 2},
		},
		ClassCleric: {
			Base:    StatBlock{MaxHealth: 90, Strength: 8, Magic: 12},
			LevelUp: StatBlock{MaxHealth: 9, Magic: 3},
		},
	}
}
