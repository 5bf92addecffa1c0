package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	err := errors.New(errors.CodeNotFound, "character not found")
	s.Assert().Equal("NOT_FOUND: character not found", err.Error())
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Empty(err.Reason)
}

func (s *ErrorsTestSuite) TestReasonConstructorsPickCode() {
	testCases := []struct {
		name   string
		err    *errors.Error
		code   errors.Code
		reason errors.Reason
	}{
		{"InvalidClass", errors.InvalidClassf("bard"), errors.CodeInvalidArgument, errors.ReasonInvalidClass},
		{"CharacterDead", errors.CharacterDeadf("x"), errors.CodeFailedPrecondition, errors.ReasonCharacterDead},
		{"InventoryFull", errors.InventoryFullf("x"), errors.CodeResourceExhausted, errors.ReasonInventoryFull},
		{"ItemNotFound", errors.ItemNotFoundf("x"), errors.CodeNotFound, errors.ReasonItemNotFound},
		{"QuestAlreadyCompleted", errors.QuestAlreadyCompletedf("x"), errors.CodeAlreadyExists, errors.ReasonQuestAlreadyCompleted},
		{"DataFormat", errors.DataFormatf("x"), errors.CodeDataLoss, errors.ReasonDataFormat},
		{"MissingDataFile", errors.MissingDataFilef("x"), errors.CodeNotFound, errors.ReasonMissingDataFile},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().Equal(tc.reason, tc.err.Reason)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorStringUsesReason() {
	err := errors.InventoryFullf("inventory holds %d items", 20)
	s.Assert().Equal("INVENTORY_FULL: inventory holds 20 items", err.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndReason() {
	baseErr := errors.QuestNotFoundf("quest %s not found", "q9")
	wrapped := errors.Wrap(baseErr, "failed to accept quest")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal(errors.ReasonQuestNotFound, wrapped.Reason)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to save character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("INTERNAL: failed to save character: disk full", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapWithReason() {
	baseErr := fmt.Errorf("unexpected EOF")
	wrapped := errors.WrapWithReason(baseErr, errors.ReasonDataFormat, "bad save file")

	s.Assert().True(errors.IsDataFormat(wrapped))
	s.Assert().Equal(errors.CodeDataLoss, wrapped.Code)
	s.Assert().True(stderrors.Is(wrapped, baseErr))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithReason(nil, errors.ReasonDataFormat, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	full := errors.InventoryFullf("a")
	otherFull := errors.InventoryFullf("b")
	missingItem := errors.ItemNotFoundf("c")
	missingQuest := errors.QuestNotFoundf("d")

	s.Assert().True(errors.Is(full, otherFull))
	s.Assert().False(errors.Is(missingItem, missingQuest))
	s.Assert().True(errors.Is(missingItem, errors.NotFound("any not found")))
	s.Assert().False(errors.Is(full, missingItem))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	s.Assert().True(errors.IsNotFound(errors.Wrap(errors.CharacterNotFoundf("x"), "load")))
	s.Assert().True(errors.IsCharacterNotFound(errors.CharacterNotFoundf("x")))
	s.Assert().True(errors.IsInsufficientGold(errors.InsufficientGoldf("x")))
	s.Assert().True(errors.IsFailedPrecondition(errors.CharacterDeadf("x")))
	s.Assert().True(errors.IsCharacterDead(errors.CharacterDeadf("x")))
	s.Assert().False(errors.IsInventoryFull(nil))
	s.Assert().False(errors.HasReason(fmt.Errorf("plain"), errors.ReasonDataFormat))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.ItemNotFoundf("item %s not in inventory", "sword").WithMeta("item_id", "sword")
	wrapped := errors.Wrap(err, "sell failed")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.ReasonItemNotFound, errors.GetReason(wrapped))
	s.Assert().Equal("sword", errors.GetMeta(wrapped)["item_id"])
	s.Assert().Equal("sell failed", errors.GetMessage(wrapped))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestUnknownReasonIsInternal() {
	s.Assert().Equal(errors.CodeInternal, errors.Reason("MADE_UP").Code())
}
