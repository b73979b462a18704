package entity

import (
	errs "txnsynth/internal/domain/error"
	tport "txnsynth/internal/domain/port/core"
)

// Ledger tracks the clean running balance of every account touched during a
// run. Balances are stored unrounded; callers round when stamping a value
// onto a record. The ledger only ever sees uncorrupted amounts, so replaying
// the clean history of an account must reproduce its balance exactly.
type Ledger struct {
	balances map[string]float64
	opening  map[string]float64
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]float64),
		opening:  make(map[string]float64),
	}
}

// Balance returns the account's current balance. The first time an account
// is seen, an opening balance in [1000, 10000) is drawn from r and stored,
// so repeated lookups are stable.
func (l *Ledger) Balance(r tport.Rand, account string) float64 {
	if _, ok := l.balances[account]; !ok {
		open := 1000 + r.Float64()*9000
		l.balances[account] = open
		l.opening[account] = open
	}
	return l.balances[account]
}

// Apply adds a transaction amount to the account's balance, drawing an
// opening balance first if the account is new, and returns the new balance.
func (l *Ledger) Apply(r tport.Rand, account string, amount float64) float64 {
	balance := l.Balance(r, account) + amount
	l.balances[account] = balance
	return balance
}

// Shift adjusts an already-tracked account by delta and returns the new
// balance. Unlike Apply it never initializes: mutation may only touch
// accounts the ledger has seen, anything else is unresolvable.
//
// Possible errors:
// - ErrUnknownAccount: if the account has no tracked balance
func (l *Ledger) Shift(account string, delta float64) (float64, error) {
	balance, ok := l.balances[account]
	if !ok {
		return 0, errs.ErrUnknownAccount
	}
	balance += delta
	l.balances[account] = balance
	return balance, nil
}

// Contains reports whether the ledger tracks the account
func (l *Ledger) Contains(account string) bool {
	_, ok := l.balances[account]
	return ok
}

// CurrentBalance returns the tracked balance without initializing, for
// inspection and audits
func (l *Ledger) CurrentBalance(account string) (float64, bool) {
	balance, ok := l.balances[account]
	return balance, ok
}

// OpeningBalance returns the opening balance drawn for an account and
// whether the account has been seen
func (l *Ledger) OpeningBalance(account string) (float64, bool) {
	open, ok := l.opening[account]
	return open, ok
}

// Len returns the number of accounts the ledger tracks
func (l *Ledger) Len() int {
	return len(l.balances)
}
