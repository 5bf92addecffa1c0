package engine

import (
	"slices"
	"sort"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// EncounterState is the state of one combat encounter
type EncounterState int

// Encounter states. Active is the only non-terminal state.
const (
	EncounterActive EncounterState = iota
	PlayerVictory
	PlayerDefeated
)

// String returns a readable state name
func (s EncounterState) String() string {
	switch s {
	case EncounterActive:
		return "active"
	case PlayerVictory:
		return "victory"
	case PlayerDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Turn records one attack
type Turn struct {
	Round    int
	Attacker string
	Defender string
	Damage   int
	Critical bool
	// DefenderHealth is the defender's health after the hit
	DefenderHealth int
}

// Encounter is a single fight between the character and one enemy. The
// enemy lives only as long as the encounter; the character's health is
// written as the fight goes.
type Encounter struct {
	character *entities.Character
	enemy     *entities.Enemy
	template  entities.EnemyTemplate

	playerCriticalEvery int
	playerTurn          int
	enemyTurn           int
	round               int
	state               EncounterState
	turns               []Turn
}

// Enemies returns the enemy names in alphabetical order
func (e *Rules) Enemies() []string {
	names := make([]string, 0, len(e.enemies))
	for name := range e.enemies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeEnemyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewEncounter starts a fight against a fresh enemy from the enemy table
func (e *Rules) NewEncounter(c *entities.Character, enemyName string) (*Encounter, error) {
	if err := requireCharacter(c); err != nil {
		return nil, err
	}

	template, ok := e.enemies[normalizeEnemyName(enemyName)]
	if !ok {
		return nil, errors.UnknownEnemyf("unknown enemy: %s", enemyName).
			WithMeta("enemy", enemyName)
	}
	if !c.IsAlive() {
		return nil, errors.CharacterDeadf("%s cannot fight while dead", c.Name)
	}

	return &Encounter{
		character:           c,
		enemy:               entities.NewEnemy(template),
		template:            template,
		playerCriticalEvery: e.criticalEvery,
		playerTurn:          1,
		enemyTurn:           1,
		state:               EncounterActive,
	}, nil
}

// ResolveEncounter fights enemyName to the end and returns the finished
// encounter. It grants no rewards; that is the caller's decision.
func (e *Rules) ResolveEncounter(c *entities.Character, enemyName string) (*Encounter, error) {
	enc, err := e.NewEncounter(c, enemyName)
	if err != nil {
		return nil, err
	}

	for enc.State() == EncounterActive {
		if _, err := enc.Step(); err != nil {
			return nil, err
		}
	}
	return enc, nil
}

// Step plays one round: the player attacks, then the enemy strikes back
// unless it fell. It returns the state after the round.
func (enc *Encounter) Step() (EncounterState, error) {
	if enc.state != EncounterActive {
		return enc.state, errors.CombatNotActivef("encounter with %s already ended: %s", enc.enemy.Name, enc.state)
	}
	enc.round++

	damage, critical := hit(enc.character.Strength, enc.playerTurn, enc.playerCriticalEvery)
	enc.playerTurn++
	enc.enemy.Health = max(enc.enemy.Health-damage, 0)
	enc.record(enc.character.GetID(), enc.enemy.GetID(), damage, critical, enc.enemy.Health)

	if enc.enemy.Health <= 0 {
		enc.state = PlayerVictory
		return enc.state, nil
	}

	damage, critical = hit(enc.enemy.Strength, enc.enemyTurn, enc.template.CriticalEvery)
	enc.enemyTurn++
	enc.character.Health = max(enc.character.Health-damage, 0)
	enc.record(enc.enemy.GetID(), enc.character.GetID(), damage, critical, enc.character.Health)

	if enc.character.Health <= 0 {
		enc.state = PlayerDefeated
	}
	return enc.state, nil
}

// hit doubles strength on every Nth turn. every == 0 never crits.
func hit(strength, turn, every int) (int, bool) {
	if every > 0 && turn%every == 0 {
		return addSat(strength, strength), true
	}
	return strength, false
}

func (enc *Encounter) record(attacker, defender string, damage int, critical bool, remaining int) {
	enc.turns = append(enc.turns, Turn{
		Round:          enc.round,
		Attacker:       attacker,
		Defender:       defender,
		Damage:         damage,
		Critical:       critical,
		DefenderHealth: remaining,
	})
}

// State returns the current encounter state
func (enc *Encounter) State() EncounterState {
	return enc.state
}

// Enemy returns the enemy being fought
func (enc *Encounter) Enemy() entities.Enemy {
	return *enc.enemy
}

// Reward returns the enemy's table row, including what a victory is worth
func (enc *Encounter) Reward() entities.EnemyTemplate {
	return enc.template
}

// Turns returns every attack so far in order
func (enc *Encounter) Turns() []Turn {
	return slices.Clone(enc.turns)
}

// Rounds returns the number of rounds played
func (enc *Encounter) Rounds() int {
	return enc.round
}
