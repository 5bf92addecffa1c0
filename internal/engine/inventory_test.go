package engine_test

import (
	"math/rand"

	"github.com/KirkDiggler/quest-chronicles/internal/engine"
	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

func item(id string, itemType entities.ItemType, effect string, cost int) *entities.ItemDefinition {
	parsed, err := entities.ParseEffect(effect)
	if err != nil {
		panic(err)
	}
	return &entities.ItemDefinition{ID: id, Name: id, Type: itemType, Effect: parsed, Cost: cost}
}

var (
	potion     = item("healing_potion", entities.ItemTypeConsumable, "health:20", 25)
	elixir     = item("elixir", entities.ItemTypeConsumable, "luck:5", 10)
	ironSword  = item("iron_sword", entities.ItemTypeWeapon, "strength:5", 30)
	steelSword = item("steel_sword", entities.ItemTypeWeapon, "strength:8", 61)
	chainMail  = item("chain_mail", entities.ItemTypeArmor, "max_health:20", 40)
)

func (s *EngineTestSuite) TestInsertAndRemove() {
	c := s.newCharacter(entities.ClassWarrior)

	s.Require().NoError(s.engine.Insert(c, "torch"))
	s.Require().NoError(s.engine.Insert(c, "rope"))
	s.Require().NoError(s.engine.Insert(c, "torch"))
	s.Assert().Equal([]string{"torch", "rope", "torch"}, c.Inventory)

	s.Require().NoError(s.engine.Remove(c, "torch"))
	s.Assert().Equal([]string{"rope", "torch"}, c.Inventory)

	err := s.engine.Remove(c, "lantern")
	s.Assert().True(errors.HasReason(err, errors.ReasonItemNotFound))
	s.Assert().Equal([]string{"rope", "torch"}, c.Inventory)
}

func (s *EngineTestSuite) TestInsertAtCapacity() {
	c := s.newCharacter(entities.ClassWarrior)
	for i := 0; i < engine.DefaultInventoryCapacity; i++ {
		s.Require().NoError(s.engine.Insert(c, "pebble"))
	}

	err := s.engine.Insert(c, "pebble")
	s.Assert().True(errors.IsInventoryFull(err))
	s.Assert().Len(c.Inventory, engine.DefaultInventoryCapacity)
}

func (s *EngineTestSuite) TestPurchase() {
	s.Run("insufficient gold leaves state unchanged", func() {
		c := s.newCharacter(entities.ClassRogue)
		c.Gold = 20

		err := s.engine.Purchase(c, ironSword)
		s.Assert().True(errors.IsInsufficientGold(err))
		s.Assert().Equal(20, c.Gold)
		s.Assert().Empty(c.Inventory)
	})

	s.Run("full inventory does not take gold", func() {
		c := s.newCharacter(entities.ClassRogue)
		c.Gold = 100
		for i := 0; i < engine.DefaultInventoryCapacity; i++ {
			s.Require().NoError(s.engine.Insert(c, "pebble"))
		}

		err := s.engine.Purchase(c, ironSword)
		s.Assert().True(errors.IsInventoryFull(err))
		s.Assert().Equal(100, c.Gold)
		s.Assert().NotContains(c.Inventory, ironSword.ID)
	})

	s.Run("success", func() {
		c := s.newCharacter(entities.ClassRogue)
		c.Gold = 30

		s.Require().NoError(s.engine.Purchase(c, ironSword))
		s.Assert().Zero(c.Gold)
		s.Assert().Equal([]string{"iron_sword"}, c.Inventory)
	})
}

func (s *EngineTestSuite) TestUse() {
	s.Run("heals and consumes", func() {
		c := s.newCharacter(entities.ClassWarrior)
		c.Health = 110
		s.Require().NoError(s.engine.Insert(c, potion.ID))

		restored, err := s.engine.Use(c, potion)
		s.Require().NoError(err)
		s.Assert().Equal(10, restored)
		s.Assert().Equal(120, c.Health)
		s.Assert().Empty(c.Inventory)
	})

	s.Run("unknown stat is consumed without effect", func() {
		c := s.newCharacter(entities.ClassWarrior)
		c.Health = 60
		s.Require().NoError(s.engine.Insert(c, elixir.ID))

		restored, err := s.engine.Use(c, elixir)
		s.Require().NoError(err)
		s.Assert().Zero(restored)
		s.Assert().Equal(60, c.Health)
		s.Assert().Empty(c.Inventory)
	})

	s.Run("missing item", func() {
		c := s.newCharacter(entities.ClassWarrior)
		_, err := s.engine.Use(c, potion)
		s.Assert().True(errors.HasReason(err, errors.ReasonItemNotFound))
	})

	s.Run("weapon is not consumable", func() {
		c := s.newCharacter(entities.ClassWarrior)
		s.Require().NoError(s.engine.Insert(c, ironSword.ID))

		_, err := s.engine.Use(c, ironSword)
		s.Assert().True(errors.HasReason(err, errors.ReasonInvalidItemType))
		s.Assert().Equal([]string{"iron_sword"}, c.Inventory)
	})

	s.Run("nil definition", func() {
		c := s.newCharacter(entities.ClassWarrior)
		_, err := s.engine.Use(c, nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) TestEquipWeaponStacks() {
	c := s.newCharacter(entities.ClassWarrior)
	s.Require().NoError(s.engine.Insert(c, ironSword.ID))
	s.Require().NoError(s.engine.Insert(c, steelSword.ID))

	s.Require().NoError(s.engine.EquipWeapon(c, ironSword))
	s.Assert().Equal(20, c.Strength)
	s.Assert().Equal("iron_sword", c.EquippedWeapon)

	s.Require().NoError(s.engine.EquipWeapon(c, steelSword))
	s.Assert().Equal(28, c.Strength)
	s.Assert().Equal("steel_sword", c.EquippedWeapon)
	s.Assert().Len(c.Inventory, 2)
}

func (s *EngineTestSuite) TestEquipTypeChecks() {
	c := s.newCharacter(entities.ClassWarrior)
	s.Require().NoError(s.engine.Insert(c, chainMail.ID))
	s.Require().NoError(s.engine.Insert(c, ironSword.ID))
	before := c.Clone()

	err := s.engine.EquipWeapon(c, chainMail)
	s.Assert().True(errors.HasReason(err, errors.ReasonInvalidItemType))
	err = s.engine.EquipArmor(c, ironSword)
	s.Assert().True(errors.HasReason(err, errors.ReasonInvalidItemType))
	err = s.engine.EquipArmor(c, item("plate", entities.ItemTypeArmor, "max_health:50", 90))
	s.Assert().True(errors.HasReason(err, errors.ReasonItemNotFound))
	s.Assert().Equal(before, c)
}

func (s *EngineTestSuite) TestEquipArmorRaisesMaxHealth() {
	c := s.newCharacter(entities.ClassMage)
	c.Health = 50
	s.Require().NoError(s.engine.Insert(c, chainMail.ID))

	s.Require().NoError(s.engine.EquipArmor(c, chainMail))
	s.Assert().Equal(100, c.MaxHealth)
	s.Assert().Equal(70, c.Health)
	s.Assert().Equal("chain_mail", c.EquippedArmor)
}

func (s *EngineTestSuite) TestSell() {
	c := s.newCharacter(entities.ClassRogue)
	c.Gold = 0
	s.Require().NoError(s.engine.Insert(c, steelSword.ID))
	s.Require().NoError(s.engine.EquipWeapon(c, steelSword))

	price, err := s.engine.Sell(c, steelSword)
	s.Require().NoError(err)
	s.Assert().Equal(30, price)
	s.Assert().Equal(30, c.Gold)
	s.Assert().Empty(c.Inventory)
	s.Assert().Empty(c.EquippedWeapon)
	s.Assert().Equal(20, c.Strength)

	_, err = s.engine.Sell(c, steelSword)
	s.Assert().True(errors.HasReason(err, errors.ReasonItemNotFound))
	s.Assert().Equal(30, c.Gold)
}

func (s *EngineTestSuite) TestSellKeepsSlotWhileACopyRemains() {
	c := s.newCharacter(entities.ClassRogue)
	s.Require().NoError(s.engine.Insert(c, ironSword.ID))
	s.Require().NoError(s.engine.Insert(c, ironSword.ID))
	s.Require().NoError(s.engine.EquipWeapon(c, ironSword))

	_, err := s.engine.Sell(c, ironSword)
	s.Require().NoError(err)
	s.Assert().Equal("iron_sword", c.EquippedWeapon)
}

func (s *EngineTestSuite) TestInventoryInvariantsHoldUnderRandomOperations() {
	c := s.newCharacter(entities.ClassRogue)
	items := []*entities.ItemDefinition{potion, elixir, ironSword, steelSword, chainMail}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		def := items[rng.Intn(len(items))]
		switch rng.Intn(7) {
		case 0:
			_ = s.engine.Purchase(c, def)
		case 1:
			_ = s.engine.Insert(c, def.ID)
		case 2:
			_ = s.engine.Remove(c, def.ID)
		case 3:
			_, _ = s.engine.Use(c, def)
		case 4:
			_ = s.engine.EquipWeapon(c, def)
		case 5:
			_ = s.engine.EquipArmor(c, def)
		case 6:
			_, _ = s.engine.Sell(c, def)
		}

		s.Require().LessOrEqual(len(c.Inventory), s.engine.InventoryCapacity())
		s.Require().GreaterOrEqual(c.Gold, 0)
		s.Require().LessOrEqual(c.Health, c.MaxHealth)
		s.Require().GreaterOrEqual(c.Health, 0)
	}
}
