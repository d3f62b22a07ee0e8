package roulette

import (
	"errors"
	"fmt"
)

var ErrInvalidBet = errors.New("invalid bet")

type BetKind string

const (
	BetNumber BetKind = "number"
	BetColor  BetKind = "color"
)

const (
	MinimalBet int64 = 1

	// NumberMultiplier is the total returned on a number hit, stake included,
	// so the net gain is 35x. ColorMultiplier likewise returns the stake plus
	// an equal win.
	NumberMultiplier int64 = 36
	ColorMultiplier  int64 = 2
)

type BetRequest struct {
	UserID string
	Kind   BetKind
	Number int
	Color  Color
	Stake  int64
}

func (r BetRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidBet)
	}
	if r.Stake < MinimalBet {
		return fmt.Errorf("%w: stake must be at least %d coin", ErrInvalidBet, MinimalBet)
	}

	switch r.Kind {
	case BetNumber:
		if r.Number < 0 || r.Number >= Slots {
			return fmt.Errorf("%w: number %d out of range 0..36", ErrInvalidBet, r.Number)
		}
	case BetColor:
		if r.Color != Red && r.Color != Black {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidBet, r.Color)
		}
	default:
		return fmt.Errorf("%w: unknown bet kind %q", ErrInvalidBet, r.Kind)
	}

	return nil
}

// payout computes the total coins returned for a drawn slot. Assumes the
// request has been validated.
func (r BetRequest) payout(slot int) int64 {
	switch r.Kind {
	case BetNumber:
		if slot == r.Number {
			return r.Stake * NumberMultiplier
		}
	case BetColor:
		if slot != 0 && SlotColor(slot) == r.Color {
			return r.Stake * ColorMultiplier
		}
	}
	return 0
}

type BetResult struct {
	Slot       int     `json:"slot"`
	SlotColor  Color   `json:"slot_color"`
	Kind       BetKind `json:"kind"`
	Stake      int64   `json:"stake"`
	Payout     int64   `json:"payout"`
	NewBalance int64   `json:"new_balance"`
}

// Won reports whether the bet returned anything.
func (r BetResult) Won() bool {
	return r.Payout > 0
}
