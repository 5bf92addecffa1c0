package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

func quest(id, prerequisite string) *entities.QuestDefinition {
	return &entities.QuestDefinition{ID: id, Title: id, RequiredLevel: 1, Prerequisite: prerequisite}
}

func TestNewQuestBook(t *testing.T) {
	testCases := []struct {
		name    string
		defs    []*entities.QuestDefinition
		wantErr bool
	}{
		{
			name: "chain in order",
			defs: []*entities.QuestDefinition{quest("a", entities.NoPrerequisite), quest("b", "a"), quest("c", "b")},
		},
		{
			name: "prerequisite declared later",
			defs: []*entities.QuestDefinition{quest("b", "a"), quest("a", "")},
		},
		{
			name:    "duplicate id",
			defs:    []*entities.QuestDefinition{quest("a", ""), quest("a", "")},
			wantErr: true,
		},
		{
			name:    "unknown prerequisite",
			defs:    []*entities.QuestDefinition{quest("a", "ghost")},
			wantErr: true,
		},
		{
			name:    "self prerequisite",
			defs:    []*entities.QuestDefinition{quest("a", "a")},
			wantErr: true,
		},
		{
			name:    "cycle not through the first quest",
			defs:    []*entities.QuestDefinition{quest("a", "b"), quest("b", "c"), quest("c", "b")},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book, err := entities.NewQuestBook(tc.defs)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsDataFormat(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.defs), book.Len())
		})
	}
}

func TestQuestBookKeepsFileOrder(t *testing.T) {
	book, err := entities.NewQuestBook([]*entities.QuestDefinition{quest("z", ""), quest("a", ""), quest("m", "")})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, book.IDs())

	def, ok := book.Get("a")
	require.True(t, ok)
	assert.False(t, def.HasPrerequisite())
}
