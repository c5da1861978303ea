package be

import (
	"stock_tracker/be/biz/config"
	"stock_tracker/be/biz/dal/repo"
	"stock_tracker/be/biz/handler"
	"stock_tracker/be/biz/market"
	"stock_tracker/be/biz/middleware"
	"stock_tracker/be/biz/middleware/auth"
	"stock_tracker/be/biz/service/stock"
	"stock_tracker/be/biz/service/user"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewEngine wires the server from explicitly passed handles. The caller owns
// the lifecycle: construct, Spin, Shutdown.
func NewEngine(db *gorm.DB, rdb *redis.Client) *server.Hertz {
	addr := config.GetServerConf().Addr
	if addr == "" {
		addr = ":8080"
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite(rdb)...)

	accounts := repo.NewAccountRepository(db)
	userSvc := user.New(accounts)
	stockSvc := stock.New(accounts)

	marketCli, err := market.New()
	if err != nil {
		panic(err)
	}

	userHandler := handler.NewUserHandler(userSvc)
	authHandler := handler.NewAuthHandler()
	stockHandler := handler.NewStockHandler(stockSvc)
	marketHandler := handler.NewMarketHandler(marketCli)

	h.GET("/ping", handler.Ping)

	api := h.Group("/api")
	api.POST("/users", userHandler.Register)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", auth.Basic(userSvc), authHandler.Login)
	authGroup.POST("/refresh", auth.JWT(), authHandler.Refresh)

	stocks := api.Group("/stocks", auth.JWT())
	stocks.GET("/:username", stockHandler.List)
	stocks.POST("/:username", stockHandler.Upsert)
	stocks.PUT("/:username/:symbol", stockHandler.SetUnits)
	stocks.DELETE("/:username/:symbol", stockHandler.Remove)

	api.GET("/quote/:symbol", auth.JWT(), marketHandler.Quote)
	api.GET("/search", auth.JWT(), marketHandler.Search)

	return h
}
