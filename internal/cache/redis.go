package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Default TTLs. Game analyses are immutable once a game is final, season
// summaries churn as new games land.
const (
	gameTTL   = 24 * time.Hour
	seasonTTL = 10 * time.Minute
)

// RedisCache fronts the analysis store for read endpoints
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
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

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

func gameKey(season, team string, gameNumber int) string {
	return fmt.Sprintf("pbp:game:%s:%s:%d", season, team, gameNumber)
}

func seasonKey(season, team string) string {
	return fmt.Sprintf("pbp:season:%s:%s", season, team)
}

// SetGame caches a game analysis payload
func (rc *RedisCache) SetGame(ctx context.Context, season, team string, gameNumber int, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, gameKey(season, team, gameNumber), data, gameTTL).Err()
}

// GetGame retrieves a cached game analysis into dest. Returns
// redis.Nil via the wrapped error on a miss.
func (rc *RedisCache) GetGame(ctx context.Context, season, team string, gameNumber int, dest interface{}) error {
	data, err := rc.client.Get(ctx, gameKey(season, team, gameNumber)).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// SetSeason caches a season summary payload
func (rc *RedisCache) SetSeason(ctx context.Context, season, team string, summary interface{}) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, seasonKey(season, team), data, seasonTTL).Err()
}

// GetSeason retrieves a cached season summary into dest
func (rc *RedisCache) GetSeason(ctx context.Context, season, team string, dest interface{}) error {
	data, err := rc.client.Get(ctx, seasonKey(season, team)).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// InvalidateSeason drops the cached summary after a game is re-analyzed
func (rc *RedisCache) InvalidateSeason(ctx context.Context, season, team string) error {
	return rc.client.Del(ctx, seasonKey(season, team)).Err()
}

// IsMiss reports whether err is a cache miss
func IsMiss(err error) bool {
	return err == redis.Nil
}
