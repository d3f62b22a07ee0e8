package stats

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_Record(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	board := NewLeaderboard(rdb)

	mock.ExpectZIncrBy(leaderboardKey, 350, "u1").SetVal(350)

	err := board.Record(context.Background(), "u1", 350)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboard_RecordLoss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	board := NewLeaderboard(rdb)

	mock.ExpectZIncrBy(leaderboardKey, -20, "u1").SetVal(-20)

	err := board.Record(context.Background(), "u1", -20)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboard_Top(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	board := NewLeaderboard(rdb)

	mock.ExpectZRevRangeWithScores(leaderboardKey, 0, 1).SetVal([]redis.Z{
		{Member: "winner", Score: 350},
		{Member: "loser", Score: -60},
	})

	entries, err := board.Top(context.Background(), 2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []LeaderboardEntry{
		{UserID: "winner", Profit: 350},
		{UserID: "loser", Profit: -60},
	}, entries)
}

func TestLeaderboard_TopDefaultsLimit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	board := NewLeaderboard(rdb)

	mock.ExpectZRevRangeWithScores(leaderboardKey, 0, 9).SetVal([]redis.Z{})

	entries, err := board.Top(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	require.NoError(t, mock.ExpectationsWereMet())
}
