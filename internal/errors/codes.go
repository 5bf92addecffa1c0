package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Reason names the game rule that rejected an operation. A single Code
// covers several reasons (an empty inventory slot and an unknown quest are
// both NOT_FOUND), so callers that care about the rule check the Reason.
type Reason string

// Reasons raised by the game engine and its collaborators
const (
	ReasonInvalidClass            Reason = "INVALID_CLASS"
	ReasonInvalidName             Reason = "INVALID_NAME"
	ReasonCharacterDead           Reason = "CHARACTER_DEAD"
	ReasonCharacterNotFound       Reason = "CHARACTER_NOT_FOUND"
	ReasonInvalidAmount           Reason = "INVALID_AMOUNT"
	ReasonInsufficientGold        Reason = "INSUFFICIENT_GOLD"
	ReasonInventoryFull           Reason = "INVENTORY_FULL"
	ReasonItemNotFound            Reason = "ITEM_NOT_FOUND"
	ReasonInvalidItemType         Reason = "INVALID_ITEM_TYPE"
	ReasonQuestNotFound           Reason = "QUEST_NOT_FOUND"
	ReasonInsufficientLevel       Reason = "INSUFFICIENT_LEVEL"
	ReasonQuestRequirementsNotMet Reason = "QUEST_REQUIREMENTS_NOT_MET"
	ReasonQuestAlreadyCompleted   Reason = "QUEST_ALREADY_COMPLETED"
	ReasonQuestNotActive          Reason = "QUEST_NOT_ACTIVE"
	ReasonUnknownEnemy            Reason = "UNKNOWN_ENEMY"
	ReasonCombatNotActive         Reason = "COMBAT_NOT_ACTIVE"
	ReasonDataFormat              Reason = "DATA_FORMAT"
	ReasonMissingDataFile         Reason = "MISSING_DATA_FILE"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	return string(r)
}

// reasonCodes pins every reason to the code it is reported under
var reasonCodes = map[Reason]Code{
	ReasonInvalidClass:            CodeInvalidArgument,
	ReasonInvalidName:             CodeInvalidArgument,
	ReasonCharacterDead:           CodeFailedPrecondition,
	ReasonCharacterNotFound:       CodeNotFound,
	ReasonInvalidAmount:           CodeInvalidArgument,
	ReasonInsufficientGold:        CodeFailedPrecondition,
	ReasonInventoryFull:           CodeResourceExhausted,
	ReasonItemNotFound:            CodeNotFound,
	ReasonInvalidItemType:         CodeInvalidArgument,
	ReasonQuestNotFound:           CodeNotFound,
	ReasonInsufficientLevel:       CodeFailedPrecondition,
	ReasonQuestRequirementsNotMet: CodeFailedPrecondition,
	ReasonQuestAlreadyCompleted:   CodeAlreadyExists,
	ReasonQuestNotActive:          CodeFailedPrecondition,
	ReasonUnknownEnemy:            CodeNotFound,
	ReasonCombatNotActive:         CodeFailedPrecondition,
	ReasonDataFormat:              CodeDataLoss,
	ReasonMissingDataFile:         CodeNotFound,
}

// Code returns the code a reason is reported under
func (r Reason) Code() Code {
	if code, ok := reasonCodes[r]; ok {
		return code
	}
	return CodeInternal
}
