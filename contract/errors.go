package contract

// Revert symbols surfaced to the host on failed transactions.
const (
	ErrNotInitialized         = "not_initialized"
	ErrAlreadyInitialized     = "already_initialized"
	ErrInsufficientForStorage = "insufficient_for_storage"
	ErrUnauthorized           = "unauthorized"
	ErrInvalidAmount          = "invalid_amount"
	ErrInvalidPayload         = "invalid_payload"
)

// ContractError carries the revert symbol alongside the human message.
type ContractError struct {
	Symbol  string
	Message string
}

func (e *ContractError) Error() string {
	return e.Symbol + ": " + e.Message
}

// fail reverts the transaction and unwinds the current entrypoint. Every
// precondition check runs before the first state write, so a fail never
// leaves partial mutations behind.
func fail(symbol string, msg string) {
	sdkInterface.Revert(msg, symbol)
	panic(&ContractError{Symbol: symbol, Message: msg})
}
