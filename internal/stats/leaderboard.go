package stats

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "coinwheel:leaderboard"

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Profit int64  `json:"profit"`
}

// Leaderboard keeps a cross-restart ranking of net profit per player in a
// redis sorted set.
type Leaderboard struct {
	rdb *redis.Client
}

func NewLeaderboard(rdb *redis.Client) *Leaderboard {
	return &Leaderboard{rdb: rdb}
}

// Record adds one bet's net profit (payout minus stake, negative on a loss)
// to the player's running total.
func (l *Leaderboard) Record(ctx context.Context, userID string, profit int64) error {
	return l.rdb.ZIncrBy(ctx, leaderboardKey, float64(profit), userID).Err()
}

// Top returns the n most profitable players, best first.
func (l *Leaderboard) Top(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	if n <= 0 {
		n = 10
	}

	members, err := l.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		userID, _ := m.Member.(string)
		entries = append(entries, LeaderboardEntry{
			UserID: userID,
			Profit: int64(m.Score),
		})
	}

	return entries, nil
}
