// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	characterrepo "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
	charactermock "github.com/KirkDiggler/quest-chronicles/internal/repositories/character/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character.
// The repository hands back a copy, as the real stores do.
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	name string, character *entities.Character, savedAt time.Time, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, characterrepo.GetInput{Name: name}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{Name: name}).
		Return(&characterrepo.GetOutput{Character: character.Clone(), SavedAt: savedAt}, nil)
}

// ExpectCharacterSave sets up a mock expectation for saving any character
// and stamps it with savedAt
func ExpectCharacterSave(ctx context.Context, mockRepo *charactermock.MockRepository, savedAt time.Time) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
			if input.Character == nil {
				return nil, errors.InvalidArgument("character is required")
			}
			return &characterrepo.SaveOutput{SavedAt: savedAt}, nil
		})
}

// ExpectCharacterDelete sets up a mock expectation for deleting a character
func ExpectCharacterDelete(
	ctx context.Context, mockRepo *charactermock.MockRepository, name string, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Delete(ctx, characterrepo.DeleteInput{Name: name}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Delete(ctx, characterrepo.DeleteInput{Name: name}).
		Return(&characterrepo.DeleteOutput{}, nil)
}
