package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, reason, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Reason  Reason                 `json:"reason,omitempty"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := string(e.Code)
	if e.Reason != "" {
		prefix = string(e.Reason)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code. When target also names a
// reason, the reasons must match too.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if !errors.As(target, &targetErr) {
		return false
	}
	if e.Code != targetErr.Code {
		return false
	}
	return targetErr.Reason == "" || e.Reason == targetErr.Reason
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewReason creates an error for a game rule. The code comes from the reason.
func NewReason(reason Reason, message string) *Error {
	return &Error{
		Code:    reason.Code(),
		Reason:  reason,
		Message: message,
	}
}

// NewReasonf creates an error for a game rule with a formatted message
func NewReasonf(reason Reason, format string, args ...interface{}) *Error {
	return NewReason(reason, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error, preserving its code and reason if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Reason:  existingErr.Reason,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithReason wraps an error under a game rule, replacing any code it had
func WrapWithReason(err error, reason Reason, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    reason.Code(),
		Reason:  reason,
		Message: message,
		Cause:   err,
	}
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// Game rule constructors

// InvalidClassf reports an unknown character class
func InvalidClassf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInvalidClass, format, args...)
}

// InvalidNamef reports a character name that cannot be used
func InvalidNamef(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInvalidName, format, args...)
}

// CharacterDeadf reports an action that needs a living character
func CharacterDeadf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonCharacterDead, format, args...)
}

// CharacterNotFoundf reports a missing saved character
func CharacterNotFoundf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonCharacterNotFound, format, args...)
}

// InvalidAmountf reports a negative experience, heal, or similar amount
func InvalidAmountf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInvalidAmount, format, args...)
}

// InsufficientGoldf reports a spend larger than the character's balance
func InsufficientGoldf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInsufficientGold, format, args...)
}

// InventoryFullf reports an insert into a full inventory
func InventoryFullf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInventoryFull, format, args...)
}

// ItemNotFoundf reports an item missing from the inventory or catalog
func ItemNotFoundf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonItemNotFound, format, args...)
}

// InvalidItemTypef reports use or equip on the wrong item category
func InvalidItemTypef(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInvalidItemType, format, args...)
}

// QuestNotFoundf reports a quest id unknown to the quest book
func QuestNotFoundf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonQuestNotFound, format, args...)
}

// InsufficientLevelf reports an unmet quest level gate
func InsufficientLevelf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonInsufficientLevel, format, args...)
}

// QuestRequirementsNotMetf reports an uncompleted prerequisite quest
func QuestRequirementsNotMetf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonQuestRequirementsNotMet, format, args...)
}

// QuestAlreadyCompletedf reports an attempt to accept a completed quest
func QuestAlreadyCompletedf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonQuestAlreadyCompleted, format, args...)
}

// QuestNotActivef reports complete or abandon on a quest that is not active
func QuestNotActivef(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonQuestNotActive, format, args...)
}

// UnknownEnemyf reports a combat target missing from the enemy table
func UnknownEnemyf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonUnknownEnemy, format, args...)
}

// CombatNotActivef reports an action on an encounter that already ended
func CombatNotActivef(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonCombatNotActive, format, args...)
}

// DataFormatf reports malformed static data or save records
func DataFormatf(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonDataFormat, format, args...)
}

// MissingDataFilef reports a required data file that does not exist
func MissingDataFilef(format string, args ...interface{}) *Error {
	return NewReasonf(ReasonMissingDataFile, format, args...)
}
