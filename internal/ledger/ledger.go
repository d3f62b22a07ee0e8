package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
)

const DefaultStartingBalance int64 = 100

// Ledger owns all account balances. Operations on the same account are
// strictly serialized via a per-account lock; operations on different
// accounts proceed independently. The map lock is only held while looking
// up or creating an account entry, never across a balance transaction.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*account
	store    Store
	starting int64
}

type account struct {
	mu      sync.Mutex
	balance int64
	loaded  bool
}

// New creates a ledger. store may be nil for memory-only operation.
func New(store Store, startingBalance int64) *Ledger {
	if startingBalance <= 0 {
		startingBalance = DefaultStartingBalance
	}
	return &Ledger{
		accounts: make(map[string]*account),
		store:    store,
		starting: startingBalance,
	}
}

func (l *Ledger) account(userID string) *account {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[userID]
	if !ok {
		acc = &account{}
		l.accounts[userID] = acc
	}
	return acc
}

// ensureLoaded initializes the account balance on first use: from the store
// if the user was persisted before, otherwise with the starting balance.
// Must be called with acc.mu held.
func (l *Ledger) ensureLoaded(ctx context.Context, userID string, acc *account) error {
	if acc.loaded {
		return nil
	}

	if l.store != nil {
		balance, found, err := l.store.Load(ctx, userID)
		if err != nil {
			return fmt.Errorf("load account %s: %w", userID, err)
		}
		if found {
			acc.balance = balance
			acc.loaded = true
			return nil
		}
	}

	acc.balance = l.starting
	acc.loaded = true
	return nil
}

// Balance returns the user's current balance, creating the account with the
// starting balance if it does not exist yet.
func (l *Ledger) Balance(ctx context.Context, userID string) (int64, error) {
	acc := l.account(userID)

	acc.mu.Lock()
	defer acc.mu.Unlock()

	if err := l.ensureLoaded(ctx, userID, acc); err != nil {
		return 0, err
	}
	return acc.balance, nil
}

// ApplyBet atomically settles one bet: it checks balance >= stake and, if the
// check passes, commits balance - stake + payout. On ErrInsufficientFunds the
// balance is left unchanged. The check and the update happen under the
// account lock, so concurrent bets for the same user are applied in some
// serial order and never act on a stale balance.
func (l *Ledger) ApplyBet(ctx context.Context, userID string, stake, payout int64) (int64, error) {
	if stake <= 0 || payout < 0 {
		return 0, ErrInvalidAmount
	}

	acc := l.account(userID)

	acc.mu.Lock()
	defer acc.mu.Unlock()

	if err := l.ensureLoaded(ctx, userID, acc); err != nil {
		return 0, err
	}

	if acc.balance < stake {
		return 0, ErrInsufficientFunds
	}

	newBalance := acc.balance - stake + payout
	if err := l.persist(ctx, userID, newBalance, payout-stake, ReasonBet); err != nil {
		return 0, err
	}

	acc.balance = newBalance
	return newBalance, nil
}

// TopUp credits the user's balance by a positive amount.
func (l *Ledger) TopUp(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	acc := l.account(userID)

	acc.mu.Lock()
	defer acc.mu.Unlock()

	if err := l.ensureLoaded(ctx, userID, acc); err != nil {
		return 0, err
	}

	newBalance := acc.balance + amount
	if err := l.persist(ctx, userID, newBalance, amount, ReasonTopUp); err != nil {
		return 0, err
	}

	acc.balance = newBalance
	return newBalance, nil
}

// persist writes to the store before the in-memory balance is committed, so
// a store failure leaves the account unchanged.
func (l *Ledger) persist(ctx context.Context, userID string, balance, delta int64, reason string) error {
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(ctx, userID, balance, delta, reason); err != nil {
		return fmt.Errorf("persist %s transaction for %s: %w", reason, userID, err)
	}
	return nil
}
