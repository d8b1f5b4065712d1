package config

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient dials Redis with the connection values carried on the
// Config (RedisAddr, RedisPassword, RedisDB, RedisTLS).  Redis backs the
// rate limiter and the catalog response cache; when the ping fails the
// function returns nil and both features switch themselves off.
func NewRedisClient(cfg Config) *redis.Client {
	var tlsConf *tls.Config
	if cfg.RedisTLS {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.RedisAddr,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
