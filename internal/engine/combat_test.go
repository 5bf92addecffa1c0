package engine_test

import (
	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

func (s *EngineTestSuite) TestWarriorDefeatsGoblin() {
	c := s.newCharacter(entities.ClassWarrior)

	enc, err := s.engine.NewEncounter(c, "goblin")
	s.Require().NoError(err)

	state, err := enc.Step()
	s.Require().NoError(err)
	s.Assert().Equal(engine.EncounterActive, state)
	s.Assert().Equal(15, enc.Enemy().Health)
	s.Assert().Equal(115, c.Health)

	state, err = enc.Step()
	s.Require().NoError(err)
	s.Assert().Equal(engine.PlayerVictory, state)
	s.Assert().Equal(2, enc.Rounds())
	s.Assert().Zero(enc.Enemy().Health)
	s.Assert().Equal(115, c.Health)

	turns := enc.Turns()
	s.Require().Len(turns, 3)
	s.Assert().Equal(engine.Turn{Round: 1, Attacker: "Aria", Defender: "goblin", Damage: 15, DefenderHealth: 15}, turns[0])
	s.Assert().Equal(engine.Turn{Round: 1, Attacker: "goblin", Defender: "Aria", Damage: 5, DefenderHealth: 115}, turns[1])
	s.Assert().Equal(engine.Turn{Round: 2, Attacker: "Aria", Defender: "goblin", Damage: 15, DefenderHealth: 0}, turns[2])

	// rewards are granted by the caller
	s.Assert().Equal(0, c.Experience)
	s.Assert().Equal(engine.DefaultStartingGold, c.Gold)
	s.Assert().Equal(20, enc.Reward().RewardXP)
	s.Assert().Equal(10, enc.Reward().RewardGold)

	_, err = enc.Step()
	s.Assert().True(errors.HasReason(err, errors.ReasonCombatNotActive))
	s.Assert().Len(enc.Turns(), 3)
}

func (s *EngineTestSuite) TestDragonCriticalCadence() {
	c := s.newCharacter(entities.ClassWarrior)

	enc, err := s.engine.ResolveEncounter(c, "Dragon")
	s.Require().NoError(err)
	s.Assert().Equal(engine.PlayerDefeated, enc.State())
	s.Assert().Equal(5, enc.Rounds())
	s.Assert().Zero(c.Health)
	s.Assert().Equal(30, enc.Enemy().Health)

	var playerCrits, enemyCrits []int
	playerTurn, enemyTurn := 0, 0
	for _, t := range enc.Turns() {
		if t.Attacker == "dragon" {
			enemyTurn++
			if t.Critical {
				enemyCrits = append(enemyCrits, enemyTurn)
				s.Assert().Equal(36, t.Damage)
			}
			continue
		}
		playerTurn++
		if t.Critical {
			playerCrits = append(playerCrits, playerTurn)
			s.Assert().Equal(30, t.Damage)
		}
	}
	s.Assert().Equal([]int{2, 4}, enemyCrits)
	s.Assert().Equal([]int{3}, playerCrits)
}

func (s *EngineTestSuite) TestEncounterFailures() {
	s.Run("unknown enemy", func() {
		c := s.newCharacter(entities.ClassRogue)
		_, err := s.engine.NewEncounter(c, "kraken")
		s.Assert().True(errors.HasReason(err, errors.ReasonUnknownEnemy))
	})

	s.Run("unknown enemy is reported before death", func() {
		c := s.newCharacter(entities.ClassRogue)
		c.Health = 0
		_, err := s.engine.NewEncounter(c, "kraken")
		s.Assert().True(errors.HasReason(err, errors.ReasonUnknownEnemy))
	})

	s.Run("dead character cannot fight", func() {
		c := s.newCharacter(entities.ClassRogue)
		c.Health = 0
		_, err := s.engine.ResolveEncounter(c, "slime")
		s.Assert().True(errors.IsCharacterDead(err))
	})
}

func (s *EngineTestSuite) TestEncountersAlwaysEnd() {
	for _, class := range entities.Classes {
		for _, enemy := range s.engine.Enemies() {
			s.Run(class.String()+"/"+enemy, func() {
				c := s.newCharacter(class)

				enc, err := s.engine.ResolveEncounter(c, enemy)
				s.Require().NoError(err)
				s.Assert().NotEqual(engine.EncounterActive, enc.State())
				if enc.State() == engine.PlayerVictory {
					s.Assert().Zero(enc.Enemy().Health)
					s.Assert().Positive(c.Health)
				} else {
					s.Assert().Zero(c.Health)
				}
			})
		}
	}
}

func (s *EngineTestSuite) TestEnemies() {
	s.Assert().Equal([]string{"dragon", "goblin", "orc", "slime"}, s.engine.Enemies())
}
