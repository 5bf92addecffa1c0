package gamedata

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

type itemRecord struct {
	ID          string `yaml:"item_id" validate:"required,excludesall=0x2C"`
	Name        string `yaml:"name" validate:"required"`
	Type        string `yaml:"type" validate:"required,oneof=consumable weapon armor"`
	Effect      string `yaml:"effect" validate:"required,contains=:"`
	Cost        int    `yaml:"cost" validate:"min=0"`
	Description string `yaml:"description"`
}

type itemFile struct {
	Items []itemRecord `yaml:"items" validate:"required,dive"`
}

type questRecord struct {
	ID            string `yaml:"quest_id" validate:"required,excludesall=0x2C"`
	Title         string `yaml:"title" validate:"required"`
	Description   string `yaml:"description"`
	RewardXP      int    `yaml:"reward_xp" validate:"min=0"`
	RewardGold    int    `yaml:"reward_gold" validate:"min=0"`
	RequiredLevel int    `yaml:"required_level" validate:"min=1"`
	Prerequisite  string `yaml:"prerequisite"`
}

type questFile struct {
	Quests []questRecord `yaml:"quests" validate:"required,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their YAML key
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseItems decodes and validates an item table
func ParseItems(data []byte) (*entities.ItemCatalog, error) {
	var file itemFile
	if err := decode(data, &file); err != nil {
		return nil, err
	}

	defs := make([]*entities.ItemDefinition, 0, len(file.Items))
	for i, rec := range file.Items {
		itemType, err := entities.ParseItemType(rec.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "items[%d]", i)
		}
		effect, err := entities.ParseEffect(rec.Effect)
		if err != nil {
			return nil, errors.Wrapf(err, "items[%d]", i)
		}
		if itemType != entities.ItemTypeConsumable && effect.Delta < 0 {
			return nil, errors.DataFormatf("items[%d].effect: %s bonus cannot be negative: %s", i, itemType, effect)
		}

		defs = append(defs, &entities.ItemDefinition{
			ID:          rec.ID,
			Name:        rec.Name,
			Type:        itemType,
			Effect:      effect,
			Cost:        rec.Cost,
			Description: rec.Description,
		})
	}

	return entities.NewItemCatalog(defs)
}

// ParseQuests decodes and validates a quest table. An empty prerequisite or
// "none" means the quest has no prerequisite.
func ParseQuests(data []byte) (*entities.QuestBook, error) {
	var file questFile
	if err := decode(data, &file); err != nil {
		return nil, err
	}

	defs := make([]*entities.QuestDefinition, 0, len(file.Quests))
	for _, rec := range file.Quests {
		prereq := strings.TrimSpace(rec.Prerequisite)
		if strings.EqualFold(prereq, entities.NoPrerequisite) {
			prereq = ""
		}

		defs = append(defs, &entities.QuestDefinition{
			ID:            rec.ID,
			Title:         rec.Title,
			Description:   rec.Description,
			RewardXP:      rec.RewardXP,
			RewardGold:    rec.RewardGold,
			RequiredLevel: rec.RequiredLevel,
			Prerequisite:  prereq,
		})
	}

	return entities.NewQuestBook(defs)
}

// decode strictly unmarshals one YAML document into out and validates it
func decode(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return errors.DataFormatf("data file is empty")
		}
		return errors.WrapWithReason(err, errors.ReasonDataFormat, "invalid yaml")
	}

	if err := validate.Struct(out); err != nil {
		return errors.DataFormatf("%s", formatValidationError(err))
	}
	return nil
}

// formatValidationError lists each failing field with the rule it broke
func formatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		// drop the root struct name from the namespace
		_, field, _ := strings.Cut(e.Namespace(), ".")

		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "excludesall":
			msgs = append(msgs, fmt.Sprintf("%s contains invalid characters", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, e.Tag()))
		}
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
