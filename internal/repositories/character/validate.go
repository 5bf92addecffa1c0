package character

import (
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

const (
	errCharacterNil = "character cannot be nil"
	errNameEmpty    = "character name cannot be empty"

	// listSeparator joins id sequences in the save file
	listSeparator = ","
)

// validateName rejects names that cannot key a record or a file
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\\n\r") {
		return errors.InvalidArgumentf("character name %q cannot be stored", name)
	}
	return nil
}

func validateForSave(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if err := validateName(c.Name); err != nil {
		return err
	}

	for _, seq := range [][]string{c.Inventory, c.ActiveQuests, c.CompletedQuests} {
		for _, id := range seq {
			if id == "" || strings.ContainsAny(id, listSeparator+"\n\r") {
				return errors.InvalidArgumentf("id %q cannot be stored", id)
			}
		}
	}
	return nil
}

// validateRecord re-checks the character invariants on a loaded record
func validateRecord(c *entities.Character) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", c.Name, vb)
	if !c.Class.Valid() {
		vb.Fieldf("class", "unknown class %q", c.Class)
	}
	errors.ValidateMin("level", c.Level, 1, vb)
	errors.ValidateMin("experience", c.Experience, 0, vb)
	errors.ValidateMin("max_health", c.MaxHealth, 1, vb)
	errors.ValidateMin("health", c.Health, 0, vb)
	if c.Health > c.MaxHealth {
		vb.Field("health", "cannot exceed max_health")
	}
	errors.ValidateMin("strength", c.Strength, 0, vb)
	errors.ValidateMin("magic", c.Magic, 0, vb)
	errors.ValidateMin("gold", c.Gold, 0, vb)

	for _, id := range c.ActiveQuests {
		if c.IsQuestCompleted(id) {
			vb.Fieldf("active_quests", "%s is also completed", id)
		}
	}
	checkUnique("active_quests", c.ActiveQuests, vb)
	checkUnique("completed_quests", c.CompletedQuests, vb)

	if err := vb.Build(); err != nil {
		return errors.WrapWithReason(err, errors.ReasonDataFormat, "invalid character record")
	}
	return nil
}

// checkUnique flags ids listed more than once; quest sets hold each id once
func checkUnique(field string, ids []string, vb *errors.ValidationBuilder) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			vb.Fieldf(field, "%s is listed more than once", id)
			continue
		}
		seen[id] = struct{}{}
	}
}
