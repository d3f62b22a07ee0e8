package ledger

import "time"

// Account — per-user coin balance record.
type Account struct {
	UserID    string    `db:"user_id" json:"user_id"`
	Balance   int64     `db:"balance" json:"balance"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Transaction struct {
	ID           int       `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	Delta        int64     `db:"delta" json:"delta"`
	Reason       string    `db:"reason" json:"reason"` // bet, topup
	BalanceAfter int64     `db:"balance_after" json:"balance_after"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

const (
	ReasonBet   = "bet"
	ReasonTopUp = "topup"
)
