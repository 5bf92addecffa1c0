// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/quest-chronicles/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// Repository defines the interface for character persistence. Records are
// keyed by character name and always written whole.
type Repository interface {
	// Save writes the full character record, replacing any previous save
	// Returns errors.InvalidArgument for a nil character or unusable name
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get loads a character by name
	// Returns errors.InvalidArgument for an empty name
	// Returns CHARACTER_NOT_FOUND if no record exists
	// Returns DATA_FORMAT if the stored record is malformed
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a character record
	// Returns errors.InvalidArgument for an empty name
	// Returns CHARACTER_NOT_FOUND if no record exists
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every saved character name in sorted order
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	SavedAt time.Time
}

// GetInput defines the input for loading a character
type GetInput struct {
	Name string
}

// GetOutput defines the output for loading a character
type GetOutput struct {
	Character *entities.Character
	SavedAt   time.Time
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing saved characters
type ListInput struct{}

// ListOutput defines the output for listing saved characters
type ListOutput struct {
	Names []string
}
