package rdx

import (
	"log"
	"os"
	"time"

	"miyako/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{Addr: addr})
	if err := Conn.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("Redis unreachable at %s: %v (caching disabled)", addr, err)
	}
}

// RdxGet returns the cached value for key, or "" on miss/error.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// RdxSet caches value under key with a one-hour TTL.
func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, time.Hour).Err()
}

func RdxDel(key string) (int64, error) {
	return Conn.Del(globals.Ctx, key).Result()
}
