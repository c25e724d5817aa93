package bank

import (
	"fmt"
	"sync"
)

// Locked serializes access to an Account so it can be shared between
// goroutines, e.g. HTTP handlers. Unlike Account it also refuses any amount
// or resulting balance that is not finite, so every Snapshot stays encodable.
type Locked struct {
	mu   sync.Mutex
	acct *Account
}

func NewLocked(acct *Account) *Locked {
	return &Locked{acct: acct}
}

func (l *Locked) Deposit(amount float64) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.acct.IsOpen() {
		if err := CheckFinite(amount); err != nil {
			return l.acct.Snapshot(), err
		}
		if amount >= 0 && CheckFinite(l.acct.Balance()+amount) != nil {
			return l.acct.Snapshot(), fmt.Errorf("deposit would overflow balance: %w", ErrAmountOutOfRange)
		}
	}
	err := l.acct.Deposit(amount)
	return l.acct.Snapshot(), err
}

func (l *Locked) Withdraw(amount float64) (Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.acct.IsOpen() {
		if err := CheckFinite(amount); err != nil {
			return l.acct.Snapshot(), err
		}
	}
	err := l.acct.Withdraw(amount)
	return l.acct.Snapshot(), err
}

func (l *Locked) Close() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acct.Close()
	return l.acct.Snapshot()
}

func (l *Locked) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct.Balance()
}

func (l *Locked) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acct.Snapshot()
}
