package infra_redis_init

import (
	"fmt"
	"log"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
)

// MustEstablishConn dials the catalog cache and aborts startup when it is unreachable.
func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		log.Fatalf("redis ping %s failed: %v", addr, err)
	}

	return client
}
