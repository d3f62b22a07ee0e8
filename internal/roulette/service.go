package roulette

import (
	"context"

	"coinwheel/internal/ledger"
)

// Ledger is the balance collaborator the resolver drives. Satisfied by
// *ledger.Ledger.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	ApplyBet(ctx context.Context, userID string, stake, payout int64) (int64, error)
}

type Service interface {
	PlaceBet(ctx context.Context, req BetRequest) (*BetResult, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
}

type service struct {
	ledger  Ledger
	spinner Spinner
}

func NewService(l Ledger, spinner Spinner) Service {
	return &service{
		ledger:  l,
		spinner: spinner,
	}
}

// PlaceBet resolves one bet: validate, check funds, spin, settle. The funds
// pre-check avoids wasting a draw on a doomed bet; the authoritative check
// still happens inside ApplyBet, so a concurrent bet that drains the balance
// between the two steps is caught there.
func (s *service) PlaceBet(ctx context.Context, req BetRequest) (*BetResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	balance, err := s.ledger.Balance(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if balance < req.Stake {
		return nil, ledger.ErrInsufficientFunds
	}

	slot := s.spinner.Spin()
	payout := req.payout(slot)

	newBalance, err := s.ledger.ApplyBet(ctx, req.UserID, req.Stake, payout)
	if err != nil {
		return nil, err
	}

	return &BetResult{
		Slot:       slot,
		SlotColor:  SlotColor(slot),
		Kind:       req.Kind,
		Stake:      req.Stake,
		Payout:     payout,
		NewBalance: newBalance,
	}, nil
}

func (s *service) GetBalance(ctx context.Context, userID string) (int64, error) {
	return s.ledger.Balance(ctx, userID)
}
