package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"leavedesk/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"leavedesk/internal/auth"
	"leavedesk/internal/cache"
	"leavedesk/internal/config"
	"leavedesk/internal/db"
	"leavedesk/internal/handler"
	"leavedesk/internal/model"
	"leavedesk/internal/repository"
	"leavedesk/internal/router"
	"leavedesk/internal/service"
)

// @title Leave Management API
// @version 1.0
// @description Leave management backend with JWT authentication, employee leave submission, and admin approval.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.LeaveRequest{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.LeaveRequest{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	leaveRepo := repository.NewLeaveRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	leaveService := service.NewLeaveService(leaveRepo)

	// Seed the admin account if absent
	if err := authService.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Printf("Admin account available: %s", cfg.AdminEmail)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	seedHandler := handler.NewSeedHandler(authService, leaveService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		leaveHandler,
		seedHandler,
	)

	// Log the swagger URL, honouring an externally visible host when set.
	swaggerHost := cfg.SwaggerHost
	if swaggerHost != "" {
		docs.SwaggerInfo.Host = swaggerHost
	} else {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
