package config

import (
	"log"

	"blogmetrics/global"

	"github.com/go-redis/redis"
)

func initRedis() {
	rdb := redis.NewClient(&redis.Options{
		Addr:     AppConfig.Redis.Addr,
		DB:       AppConfig.Redis.DB,
		Password: AppConfig.Redis.Password,
	})

	if _, err := rdb.Ping().Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	global.RedisDB = rdb
}
