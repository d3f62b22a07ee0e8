package stats

import (
	"sort"
	"sync"
)

// BetOutcome is one player's aggregated session line: total prize won and
// the balance after their latest bet.
type BetOutcome struct {
	UserID  string `json:"user_id"`
	Prize   int64  `json:"prize"`
	Balance int64  `json:"balance"`
}

// Tracker aggregates bet results for the current process run.
type Tracker struct {
	mu      sync.Mutex
	results map[string]*BetOutcome
}

func NewTracker() *Tracker {
	return &Tracker{
		results: make(map[string]*BetOutcome),
	}
}

// Record adds one resolved bet: prizes accumulate, balance reflects the
// latest transaction.
func (t *Tracker) Record(userID string, prize, balance int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r, ok := t.results[userID]; ok {
		r.Prize += prize
		r.Balance = balance
		return
	}
	t.results[userID] = &BetOutcome{UserID: userID, Prize: prize, Balance: balance}
}

// Results returns all session lines ordered by total prize, highest first.
func (t *Tracker) Results() []BetOutcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]BetOutcome, 0, len(t.results))
	for _, r := range t.results {
		out = append(out, *r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Prize != out[j].Prize {
			return out[i].Prize > out[j].Prize
		}
		return out[i].UserID < out[j].UserID
	})

	return out
}

func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = make(map[string]*BetOutcome)
}
