package engine

import (
	"slices"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// QuestCompletion reports what completing a quest granted
type QuestCompletion struct {
	Quest        *entities.QuestDefinition
	LevelsGained int
}

func requireBook(book *entities.QuestBook) error {
	if book == nil {
		return errors.InvalidArgument("quest book cannot be nil")
	}
	return nil
}

// AcceptQuest adds questID to the active set. Accepting a quest that is
// already active does nothing.
func (e *Rules) AcceptQuest(c *entities.Character, questID string, book *entities.QuestBook) error {
	if err := requireCharacter(c); err != nil {
		return err
	}
	if err := requireBook(book); err != nil {
		return err
	}

	quest, ok := book.Get(questID)
	if !ok {
		return errors.QuestNotFoundf("unknown quest: %s", questID).WithMeta("quest_id", questID)
	}
	if c.Level < quest.RequiredLevel {
		return errors.InsufficientLevelf("%s requires level %d, %s is level %d",
			quest.Title, quest.RequiredLevel, c.Name, c.Level).
			WithMeta("required_level", quest.RequiredLevel)
	}
	if quest.HasPrerequisite() && !c.IsQuestCompleted(quest.Prerequisite) {
		return errors.QuestRequirementsNotMetf("%s requires completing %s first", quest.Title, quest.Prerequisite).
			WithMeta("prerequisite", quest.Prerequisite)
	}
	if c.IsQuestCompleted(questID) {
		return errors.QuestAlreadyCompletedf("quest already completed: %s", questID).
			WithMeta("quest_id", questID)
	}

	if !c.IsQuestActive(questID) {
		c.ActiveQuests = append(c.ActiveQuests, questID)
	}
	return nil
}

// CompleteQuest moves an active quest to the completed set and pays its
// rewards. The experience reward may cascade into several level-ups.
func (e *Rules) CompleteQuest(
	c *entities.Character,
	questID string,
	book *entities.QuestBook,
) (*QuestCompletion, error) {
	if err := requireCharacter(c); err != nil {
		return nil, err
	}
	if err := requireBook(book); err != nil {
		return nil, err
	}

	if !c.IsQuestActive(questID) {
		return nil, errors.QuestNotActivef("quest not active: %s", questID).WithMeta("quest_id", questID)
	}
	quest, ok := book.Get(questID)
	if !ok {
		return nil, errors.QuestNotFoundf("unknown quest: %s", questID).WithMeta("quest_id", questID)
	}
	if quest.RewardXP < 0 || quest.RewardGold < 0 {
		return nil, errors.InvalidAmountf("quest %s has a negative reward", questID)
	}
	if !c.IsAlive() {
		return nil, errors.CharacterDeadf("%s cannot complete quests while dead", c.Name)
	}

	c.ActiveQuests = slices.DeleteFunc(c.ActiveQuests, func(id string) bool { return id == questID })
	if !c.IsQuestCompleted(questID) {
		c.CompletedQuests = append(c.CompletedQuests, questID)
	}

	c.Gold = addSat(c.Gold, quest.RewardGold)
	levels := e.addExperience(c, quest.RewardXP)

	return &QuestCompletion{Quest: quest, LevelsGained: levels}, nil
}

// AbandonQuest drops an active quest with no reward or penalty
func (e *Rules) AbandonQuest(c *entities.Character, questID string) error {
	if err := requireCharacter(c); err != nil {
		return err
	}
	if !c.IsQuestActive(questID) {
		return errors.QuestNotActivef("quest not active: %s", questID).WithMeta("quest_id", questID)
	}

	c.ActiveQuests = slices.DeleteFunc(c.ActiveQuests, func(id string) bool { return id == questID })
	return nil
}

// ListAvailableQuests returns every quest that is neither active nor
// completed, in quest book order. Level and prerequisite gates are checked
// on accept, not here.
func (e *Rules) ListAvailableQuests(c *entities.Character, book *entities.QuestBook) []string {
	if c == nil || book == nil {
		return nil
	}

	available := make([]string, 0, book.Len())
	for _, id := range book.IDs() {
		if c.IsQuestActive(id) || c.IsQuestCompleted(id) {
			continue
		}
		available = append(available, id)
	}
	return available
}

// ListActiveQuests returns the active quest ids in acceptance order
func (e *Rules) ListActiveQuests(c *entities.Character) []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.ActiveQuests)
}

// ListCompletedQuests returns the completed quest ids in completion order
func (e *Rules) ListCompletedQuests(c *entities.Character) []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.CompletedQuests)
}
