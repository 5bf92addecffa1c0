package entities

import (
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// NoPrerequisite is the data-file sentinel for a quest anyone may accept
const NoPrerequisite = "none"

// QuestDefinition is a read-only quest from the static quest table
type QuestDefinition struct {
	ID            string
	Title         string
	Description   string
	RewardXP      int
	RewardGold    int
	RequiredLevel int
	// Prerequisite is a quest id that must be completed first, or empty
	Prerequisite string
}

// HasPrerequisite reports whether another quest must be completed first
func (q *QuestDefinition) HasPrerequisite() bool {
	return q.Prerequisite != "" && q.Prerequisite != NoPrerequisite
}

// QuestBook is the id-indexed quest table, kept in file order
type QuestBook struct {
	order []string
	byID  map[string]*QuestDefinition
}

// NewQuestBook builds a quest book. It rejects duplicate ids, prerequisites
// naming unknown quests, and prerequisite chains that loop back on themselves.
func NewQuestBook(defs []*QuestDefinition) (*QuestBook, error) {
	b := &QuestBook{
		order: make([]string, 0, len(defs)),
		byID:  make(map[string]*QuestDefinition, len(defs)),
	}
	for _, def := range defs {
		if def == nil || def.ID == "" {
			return nil, errors.DataFormatf("quest definition without an id")
		}
		if _, dup := b.byID[def.ID]; dup {
			return nil, errors.DataFormatf("duplicate quest id %q", def.ID)
		}
		b.order = append(b.order, def.ID)
		b.byID[def.ID] = def
	}

	for _, id := range b.order {
		def := b.byID[id]
		if !def.HasPrerequisite() {
			continue
		}
		if _, ok := b.byID[def.Prerequisite]; !ok {
			return nil, errors.DataFormatf("quest %q requires unknown quest %q", id, def.Prerequisite)
		}
	}

	// each quest has at most one prerequisite, so a chain longer than the
	// book itself must revisit a quest
	for _, id := range b.order {
		cur := b.byID[id]
		for steps := 0; cur.HasPrerequisite(); steps++ {
			if steps >= len(b.order) || cur.Prerequisite == id {
				return nil, errors.DataFormatf("quest %q has a circular prerequisite chain", id)
			}
			cur = b.byID[cur.Prerequisite]
		}
	}

	return b, nil
}

// Get looks up a quest definition by id
func (b *QuestBook) Get(id string) (*QuestDefinition, bool) {
	def, ok := b.byID[id]
	return def, ok
}

// IDs returns every quest id in file order
func (b *QuestBook) IDs() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of quests
func (b *QuestBook) Len() int {
	return len(b.order)
}
