package main

import (
	"context"
	"log"

	"lacarreta/configs"
	"lacarreta/controllers"
	"lacarreta/middlewares"
	"lacarreta/repository"
	"lacarreta/routes"
	"lacarreta/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	client, db, err := configs.ConnectMongo(ctx, cfg)
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()

	if cfg.SeedCatalog {
		if err := configs.SeedCatalog(ctx, db, logger); err != nil {
			logger.Fatal("seed catalog failed", zap.Error(err))
		}
	}

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db, cfg.StoreTimeout)
	menuRepo := repository.NewMenuRepository(db, cfg.StoreTimeout)
	orderRepo := repository.NewOrderRepository(db, cfg.StoreTimeout)

	// Services
	authSvc, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		logger.Fatal("init auth service failed", zap.Error(err))
	}
	categorySvc := services.NewCategoryService(categoryRepo)
	menuSvc := services.NewMenuService(menuRepo, categoryRepo)
	orderSvc := services.NewOrderService(orderRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))

	routes.RegisterRoutes(r, cfg.JWTSecret, routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc, logger),
		Category: controllers.NewCategoryController(categorySvc, logger),
		Menu:     controllers.NewMenuController(menuSvc, logger),
		Order:    controllers.NewOrderController(orderSvc, logger),
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
