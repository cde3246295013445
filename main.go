package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shopcore-api/cache"
	"github.com/shopcore-api/config"
	"github.com/shopcore-api/controllers"
	"github.com/shopcore-api/database"
	"github.com/shopcore-api/repositories"
	"github.com/shopcore-api/routes"
	"github.com/shopcore-api/services"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	// Cache is optional; without REDIS_ADDR every listing hits the database.
	var pageCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		pageCache = cache.New(rdb)
		logrus.Info("redis cache enabled")
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	productService := services.NewProductService(productRepo, pageCache)
	orderService := services.NewOrderService(orderRepo, userRepo)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(
		router,
		cfg.JWTSecret,
		controllers.NewUserController(userService),
		controllers.NewProductController(productService),
		controllers.NewOrderController(orderService),
	)

	logrus.Infof("shopcore-api listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
