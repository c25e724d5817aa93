package bank

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Account is a single balance with an open/closed lifecycle.
// It is not safe for concurrent use; see Locked.
type Account struct {
	id      string
	balance float64
	status  Status
}

// Snapshot is a point-in-time copy of an account's state.
type Snapshot struct {
	ID      string  `json:"id"`
	Balance float64 `json:"balance"`
	Status  Status  `json:"status"`
}

// NewAccount returns an open account. The starting balance is taken as given.
func NewAccount(id string, initialBalance float64) *Account {
	return &Account{
		id:      id,
		balance: initialBalance,
		status:  StatusOpen,
	}
}

func (a *Account) ID() string {
	return a.id
}

func (a *Account) Balance() float64 {
	return a.balance
}

func (a *Account) Status() Status {
	return a.status
}

func (a *Account) IsOpen() bool {
	return a.status == StatusOpen
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount float64) error {
	if !a.IsOpen() {
		return ErrInvalidOperation
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	a.balance += amount
	return nil
}

// Withdraw removes amount from the balance. A negative amount is rejected
// rather than treated as a deposit.
func (a *Account) Withdraw(amount float64) error {
	if !a.IsOpen() {
		return ErrInvalidOperation
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}

// Close marks the account closed. Closing a closed account is a no-op.
func (a *Account) Close() {
	a.status = StatusClosed
}

func (a *Account) Snapshot() Snapshot {
	return Snapshot{ID: a.id, Balance: a.balance, Status: a.status}
}

// FormatAmount renders an amount with two decimal places, e.g. 1300 -> "1300.00".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// CheckFinite rejects NaN and infinite amounts.
func CheckFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrAmountOutOfRange, v)
	}
	return nil
}

// ParseAmount parses a user-supplied amount such as "500" or "12.50".
// The sign is preserved; NaN and infinities are rejected.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if err := CheckFinite(v); err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}
