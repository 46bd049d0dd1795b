package cache

import (
	"context"
	"errors"
	"time"

	"github.com/George0Simion/BizzGenie/internal/config"
	"github.com/George0Simion/BizzGenie/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const adviceKeyPrefix = "bizzgenie:advice:"

type RedisAdviceCache struct {
	client *redis.Client
}

func NewRedisAdviceCache(cfg config.Redis) *RedisAdviceCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisAdviceCache{client: client}
}

func (c *RedisAdviceCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisAdviceCache) Close() error {
	return c.client.Close()
}

func (c *RedisAdviceCache) Get(ctx context.Context, key string) (*domain.FinanceAdvice, bool, error) {
	val, err := c.client.Get(ctx, adviceKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var advice domain.FinanceAdvice
	if err := json.Unmarshal([]byte(val), &advice); err != nil {
		return nil, false, err
	}
	return &advice, true, nil
}

func (c *RedisAdviceCache) Set(ctx context.Context, key string, advice *domain.FinanceAdvice, ttl time.Duration) error {
	if advice == nil {
		return nil
	}

	payload, err := json.Marshal(advice)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, adviceKeyPrefix+key, payload, ttl).Err()
}
