package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetReason extracts the game rule reason from an error, if any
func GetReason(err error) Reason {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Reason
	}
	return ""
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// HasReason checks if an error was raised for the given game rule
func HasReason(err error, reason Reason) bool {
	return err != nil && GetReason(err) == reason
}

// IsCharacterNotFound checks if an error reports a missing saved character
func IsCharacterNotFound(err error) bool {
	return HasReason(err, ReasonCharacterNotFound)
}

// IsCharacterDead checks if an error reports a dead character
func IsCharacterDead(err error) bool {
	return HasReason(err, ReasonCharacterDead)
}

// IsInventoryFull checks if an error reports a full inventory
func IsInventoryFull(err error) bool {
	return HasReason(err, ReasonInventoryFull)
}

// IsInsufficientGold checks if an error reports a short balance
func IsInsufficientGold(err error) bool {
	return HasReason(err, ReasonInsufficientGold)
}

// IsDataFormat checks if an error reports malformed data
func IsDataFormat(err error) bool {
	return HasReason(err, ReasonDataFormat)
}
