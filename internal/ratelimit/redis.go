package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisQuota is a fixed-window counter shared by every server instance that
// points at the same Redis. It only stores call counts.
type RedisQuota struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Limit    int64
	Window   time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		Limit:    600,
		Window:   time.Minute,
	}
}

func NewRedisQuota(cfg RedisConfig) (*RedisQuota, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisQuota{
		client: client,
		limit:  cfg.Limit,
		window: cfg.Window,
		now:    time.Now,
	}, nil
}

func (q *RedisQuota) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := windowKey(key, q.now(), q.window)

	pipe := q.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, q.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return incr.Val() <= q.limit, nil
}

func (q *RedisQuota) Close() error {
	return q.client.Close()
}

func windowKey(key string, now time.Time, window time.Duration) string {
	bucket := now.UnixNano() / int64(window)
	return "quota:" + key + ":" + strconv.FormatInt(bucket, 10)
}

type NoOpLimiter struct{}

func NewNoOpLimiter() *NoOpLimiter {
	return &NoOpLimiter{}
}

func (l *NoOpLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

func (l *NoOpLimiter) Close() error {
	return nil
}
