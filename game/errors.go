package game

import "errors"

// ErrorCode identifies a failure kind surfaced to callers.
type ErrorCode string

const (
	CodeRoomNotFound        ErrorCode = "ROOM_NOT_FOUND"
	CodeGameNotFound        ErrorCode = "GAME_NOT_FOUND"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeRoomNotAccepting    ErrorCode = "ROOM_NOT_ACCEPTING"
	CodeRoomFull            ErrorCode = "ROOM_FULL"
	CodeNameTaken           ErrorCode = "NAME_TAKEN"
	CodeInsufficientPlayers ErrorCode = "INSUFFICIENT_PLAYERS"
	CodeInvalidLot          ErrorCode = "INVALID_LOT"
	CodeInsufficientFunds   ErrorCode = "INSUFFICIENT_FUNDS"
	CodeInsufficientShares  ErrorCode = "INSUFFICIENT_SHARES"
	CodeInvalidStockType    ErrorCode = "INVALID_STOCK_TYPE"
	CodeInvalidTransaction  ErrorCode = "INVALID_TRANSACTION"
	CodeWrongPhase          ErrorCode = "WRONG_PHASE"
	CodeNotYourTurn         ErrorCode = "NOT_YOUR_TURN"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// Error carries a machine-readable code alongside a user-facing message.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the error code, defaulting to CodeInternal for plain errors.
func CodeOf(err error) ErrorCode {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
