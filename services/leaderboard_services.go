package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "duel:wins"

// PlayerWins is one leaderboard entry
type PlayerWins struct {
	UserID string `json:"user_id"`
	Wins   int64  `json:"wins"`
	Rank   int64  `json:"rank"`
}

// LeaderboardService keeps per-player duel win counters in a redis sorted
// set. It sits outside the consistency model: a failed update is logged and
// forgotten, duel state is never affected.
type LeaderboardService struct {
	client *redis.Client
}

// NewLeaderboardService returns nil when no redis client is configured,
// which disables leaderboard updates entirely
func NewLeaderboardService(client *redis.Client) *LeaderboardService {
	if client == nil {
		return nil
	}
	return &LeaderboardService{client: client}
}

// RecordWin credits one duel win to the user, best-effort
func (s *LeaderboardService) RecordWin(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.client.ZIncrBy(ctx, leaderboardKey, 1, userID).Err(); err != nil {
		log.Printf("Failed to record duel win for %s: %v", userID, err)
	}
}

// TopPlayers returns the n players with the most duel wins
func (s *LeaderboardService) TopPlayers(n int) ([]PlayerWins, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	entries, err := s.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	players := make([]PlayerWins, 0, len(entries))
	for i, entry := range entries {
		players = append(players, PlayerWins{
			UserID: entry.Member.(string),
			Wins:   int64(entry.Score),
			Rank:   int64(i + 1),
		})
	}
	return players, nil
}
