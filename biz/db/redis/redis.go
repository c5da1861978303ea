package redis

import (
	"fmt"

	"stock_tracker/be/biz/config"

	"github.com/redis/go-redis/v9"
)

func Init() *redis.Client {
	conf := config.GetRedisConf()
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
}
