package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rktclgh/fairplay-booth/internal/domain"
)

const keyPrefix = "booth:queue-status:"

// putScript stores ARGV[1] unless the cached snapshot has a higher version.
var putScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
	local ok, decoded = pcall(cjson.decode, cur)
	if ok and decoded['version'] and tonumber(decoded['version']) > tonumber(ARGV[2]) then
		return 0
	end
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisStatusCache shares congestion snapshots between engine replicas.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatusCache(ctx context.Context, opts RedisOptions) (*RedisStatusCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStatusCache{client: client, ttl: opts.TTL}, nil
}

func (c *RedisStatusCache) Put(ctx context.Context, s domain.QueueStatus) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}

	err = putScript.Run(ctx, c.client, []string{keyPrefix + s.ExperienceID},
		payload, s.Version, c.ttl.Milliseconds(),
	).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("put status: %w", err)
	}
	return nil
}

func (c *RedisStatusCache) Get(ctx context.Context, experienceID string) (*domain.QueueStatus, error) {
	payload, err := c.client.Get(ctx, keyPrefix+experienceID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get status: %w", err)
	}

	var s domain.QueueStatus
	if err = json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}
	return &s, nil
}

func (c *RedisStatusCache) Close() error {
	return c.client.Close()
}
