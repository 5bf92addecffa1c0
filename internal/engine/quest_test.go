package engine_test

import (
	"math"

	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

func (s *EngineTestSuite) questBook() *entities.QuestBook {
	book, err := entities.NewQuestBook([]*entities.QuestDefinition{
		{ID: "rats", Title: "Cellar Rats", RewardXP: 50, RewardGold: 10, RequiredLevel: 1, Prerequisite: entities.NoPrerequisite},
		{ID: "bandits", Title: "Bandit Camp", RewardXP: 120, RewardGold: 40, RequiredLevel: 1, Prerequisite: "rats"},
		{ID: "dragon", Title: "The Red Wyrm", RewardXP: 500, RewardGold: 300, RequiredLevel: 3},
	})
	s.Require().NoError(err)
	return book
}

func (s *EngineTestSuite) TestAcceptQuest() {
	book := s.questBook()

	s.Run("accepts and is idempotent", func() {
		c := s.newCharacter(entities.ClassWarrior)
		s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))
		s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))
		s.Assert().Equal([]string{"rats"}, c.ActiveQuests)
	})

	s.Run("unknown quest", func() {
		c := s.newCharacter(entities.ClassWarrior)
		err := s.engine.AcceptQuest(c, "kraken", book)
		s.Assert().True(errors.HasReason(err, errors.ReasonQuestNotFound))
		s.Assert().Empty(c.ActiveQuests)
	})

	s.Run("level gate leaves active set unchanged", func() {
		c := s.newCharacter(entities.ClassWarrior)
		s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))

		err := s.engine.AcceptQuest(c, "dragon", book)
		s.Assert().True(errors.HasReason(err, errors.ReasonInsufficientLevel))
		s.Assert().Equal([]string{"rats"}, c.ActiveQuests)
	})

	s.Run("prerequisite not completed", func() {
		c := s.newCharacter(entities.ClassWarrior)
		err := s.engine.AcceptQuest(c, "bandits", book)
		s.Assert().True(errors.HasReason(err, errors.ReasonQuestRequirementsNotMet))
		s.Assert().Empty(c.ActiveQuests)
	})

	s.Run("completed quest cannot be taken again", func() {
		c := s.newCharacter(entities.ClassWarrior)
		s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))
		_, err := s.engine.CompleteQuest(c, "rats", book)
		s.Require().NoError(err)

		err = s.engine.AcceptQuest(c, "rats", book)
		s.Assert().True(errors.HasReason(err, errors.ReasonQuestAlreadyCompleted))
		s.Assert().Empty(c.ActiveQuests)
	})

	s.Run("nil book", func() {
		c := s.newCharacter(entities.ClassWarrior)
		s.Assert().True(errors.IsInvalidArgument(s.engine.AcceptQuest(c, "rats", nil)))
	})
}

func (s *EngineTestSuite) TestCompleteQuestLevelsUp() {
	book := s.questBook()
	c := s.newCharacter(entities.ClassWarrior)
	c.Experience = 80
	c.Health = 40
	s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))

	result, err := s.engine.CompleteQuest(c, "rats", book)
	s.Require().NoError(err)
	s.Assert().Equal("rats", result.Quest.ID)
	s.Assert().Equal(1, result.LevelsGained)
	s.Assert().Equal(2, c.Level)
	s.Assert().Equal(30, c.Experience)
	s.Assert().Equal(c.MaxHealth, c.Health)
	s.Assert().Equal(60, c.Gold)
	s.Assert().Empty(c.ActiveQuests)
	s.Assert().Equal([]string{"rats"}, c.CompletedQuests)
}

func (s *EngineTestSuite) TestCompleteQuestChainUnlocks() {
	book := s.questBook()
	c := s.newCharacter(entities.ClassMage)

	s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))
	_, err := s.engine.CompleteQuest(c, "rats", book)
	s.Require().NoError(err)

	s.Require().NoError(s.engine.AcceptQuest(c, "bandits", book))
	result, err := s.engine.CompleteQuest(c, "bandits", book)
	s.Require().NoError(err)
	s.Assert().Equal(1, result.LevelsGained)
	s.Assert().Equal(2, c.Level)
	s.Assert().Equal(70, c.Experience)
	s.Assert().Equal([]string{"rats", "bandits"}, s.engine.ListCompletedQuests(c))
}

func (s *EngineTestSuite) TestCompleteQuestHugeReward() {
	book, err := entities.NewQuestBook([]*entities.QuestDefinition{
		{ID: "hoard", Title: "Dragon Hoard", RewardXP: math.MaxInt, RewardGold: math.MaxInt, RequiredLevel: 1},
	})
	s.Require().NoError(err)

	c := s.newCharacter(entities.ClassRogue)
	s.Require().NoError(s.engine.AcceptQuest(c, "hoard", book))

	result, err := s.engine.CompleteQuest(c, "hoard", book)
	s.Require().NoError(err)
	s.Assert().Equal(math.MaxInt/engine.DefaultXPPerLevel, result.LevelsGained)
	s.Assert().Equal(math.MaxInt, c.Gold)
	s.Assert().GreaterOrEqual(c.Experience, 0)
	s.Assert().Equal(c.MaxHealth, c.Health)
}

func (s *EngineTestSuite) TestCompleteQuestFailures() {
	book := s.questBook()

	s.Run("not active", func() {
		c := s.newCharacter(entities.ClassRogue)
		_, err := s.engine.CompleteQuest(c, "rats", book)
		s.Assert().True(errors.HasReason(err, errors.ReasonQuestNotActive))
		s.Assert().Empty(c.CompletedQuests)
	})

	s.Run("dead character keeps the quest active", func() {
		c := s.newCharacter(entities.ClassRogue)
		s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))
		c.Health = 0
		before := c.Clone()

		_, err := s.engine.CompleteQuest(c, "rats", book)
		s.Assert().True(errors.IsCharacterDead(err))
		s.Assert().Equal(before, c)
	})

	s.Run("quest removed from the book", func() {
		c := s.newCharacter(entities.ClassRogue)
		c.ActiveQuests = append(c.ActiveQuests, "lost")
		_, err := s.engine.CompleteQuest(c, "lost", book)
		s.Assert().True(errors.HasReason(err, errors.ReasonQuestNotFound))
		s.Assert().Equal([]string{"lost"}, c.ActiveQuests)
	})
}

func (s *EngineTestSuite) TestAbandonQuest() {
	book := s.questBook()
	c := s.newCharacter(entities.ClassCleric)
	s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))

	s.Require().NoError(s.engine.AbandonQuest(c, "rats"))
	s.Assert().Empty(c.ActiveQuests)
	s.Assert().Empty(c.CompletedQuests)
	s.Assert().Equal(0, c.Experience)

	err := s.engine.AbandonQuest(c, "rats")
	s.Assert().True(errors.HasReason(err, errors.ReasonQuestNotActive))
}

func (s *EngineTestSuite) TestListQuests() {
	book := s.questBook()
	c := s.newCharacter(entities.ClassCleric)

	s.Assert().Equal([]string{"rats", "bandits", "dragon"}, s.engine.ListAvailableQuests(c, book))

	s.Require().NoError(s.engine.AcceptQuest(c, "rats", book))
	s.Assert().Equal([]string{"bandits", "dragon"}, s.engine.ListAvailableQuests(c, book))
	s.Assert().Equal([]string{"rats"}, s.engine.ListActiveQuests(c))

	active := s.engine.ListActiveQuests(c)
	active[0] = "mutated"
	s.Assert().Equal([]string{"rats"}, c.ActiveQuests)

	_, err := s.engine.CompleteQuest(c, "rats", book)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"bandits", "dragon"}, s.engine.ListAvailableQuests(c, book))
	s.Assert().Empty(s.engine.ListActiveQuests(c))
}

func (s *EngineTestSuite) TestQuestSetsStayDisjoint() {
	book := s.questBook()
	c := s.newCharacter(entities.ClassWarrior)
	c.Level = 5

	ops := []func(){
		func() { _ = s.engine.AcceptQuest(c, "rats", book) },
		func() { _ = s.engine.AcceptQuest(c, "dragon", book) },
		func() { _, _ = s.engine.CompleteQuest(c, "rats", book) },
		func() { _ = s.engine.AcceptQuest(c, "bandits", book) },
		func() { _ = s.engine.AcceptQuest(c, "rats", book) },
		func() { _ = s.engine.AbandonQuest(c, "dragon") },
		func() { _, _ = s.engine.CompleteQuest(c, "bandits", book) },
		func() { _ = s.engine.AcceptQuest(c, "dragon", book) },
	}
	for _, op := range ops {
		op()
		for _, id := range c.ActiveQuests {
			s.Require().NotContains(c.CompletedQuests, id)
		}
	}
	s.Assert().Equal([]string{"dragon"}, c.ActiveQuests)
	s.Assert().Equal([]string{"rats", "bandits"}, c.CompletedQuests)
}
