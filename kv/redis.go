package kv

import (
	"time"

	"github.com/go-redis/redis/v7"
)

// Redis implements KeyValueStore on a Redis instance. Expiry is delegated
// to Redis key TTLs.
type Redis struct {
	client *redis.Client
}

var _ KeyValueStore = (*Redis)(nil)

// NewRedis connects to the given Redis instance and verifies the
// connection with a ping.
func NewRedis(addr, pwd string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pwd,
		DB:       db,
	})

	if err := client.Ping().Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Set(key, value string, exp time.Duration) error {
	return r.client.Set(key, value, exp).Err()
}

func (r *Redis) Has(key string) (bool, error) {
	n, err := r.client.Exists(key).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
