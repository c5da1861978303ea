package main

import (
	"flag"

	be "stock_tracker/be"
	"stock_tracker/be/biz/config"
	"stock_tracker/be/biz/db/mysql"
	redisdb "stock_tracker/be/biz/db/redis"
	"stock_tracker/be/biz/util/logger"
)

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "config file path")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()

	db := mysql.Init()
	rdb := redisdb.Init()

	h := be.NewEngine(db, rdb)
	h.Spin()
}
