package bank

import "errors"

var (
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")
	ErrInvalidOperation  = errors.New("operation not allowed on a closed account")
	ErrAmountOutOfRange  = errors.New("amount out of range")
)

// Kind names an error condition on the wire.
type Kind string

const (
	KindNegativeAmount    Kind = "negative_amount"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindInvalidOperation  Kind = "invalid_operation"
	KindAmountOutOfRange  Kind = "amount_out_of_range"
)

var kindErrors = map[Kind]error{
	KindNegativeAmount:    ErrNegativeAmount,
	KindInsufficientFunds: ErrInsufficientFunds,
	KindInvalidOperation:  ErrInvalidOperation,
	KindAmountOutOfRange:  ErrAmountOutOfRange,
}

// KindOf returns the kind of err, or "" if err is not one of the account errors.
func KindOf(err error) Kind {
	for k, sentinel := range kindErrors {
		if errors.Is(err, sentinel) {
			return k
		}
	}
	return ""
}

// ErrorForKind returns the sentinel error for k, or nil if k is unknown.
func ErrorForKind(k Kind) error {
	return kindErrors[k]
}
