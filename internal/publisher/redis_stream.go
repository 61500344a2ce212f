package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names for downstream consumers (report generators, dashboards)
const (
	gameStream   = "pbp.games.analyzed"
	seasonStream = "pbp.seasons.updated"
)

// RedisPublisher publishes analysis events to Redis streams
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher creates a new Redis stream publisher
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisPublisher{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rp *RedisPublisher) Close() error {
	return rp.client.Close()
}

// PublishGameAnalyzed announces a freshly analyzed game
func (rp *RedisPublisher) PublishGameAnalyzed(ctx context.Context, season, team string, gameNumber int, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: gameStream,
		Values: map[string]interface{}{
			"season":      season,
			"team":        team,
			"game_number": gameNumber,
			"data":        string(data),
			"timestamp":   time.Now().Unix(),
		},
	}).Err()
}

// PublishSeasonUpdated announces a recomputed season summary
func (rp *RedisPublisher) PublishSeasonUpdated(ctx context.Context, season, team string, summary interface{}) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: seasonStream,
		Values: map[string]interface{}{
			"season":    season,
			"team":      team,
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
