package main

import (
	"context"
	"log"

	"leavedesk/internal/auth"
	"leavedesk/internal/config"
	"leavedesk/internal/db"
	apperrors "leavedesk/internal/errors"
	"leavedesk/internal/model"
	"leavedesk/internal/repository"
	"leavedesk/internal/seed"
	"leavedesk/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.LeaveRequest{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	leaveRepo := repository.NewLeaveRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(nil)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	leaveService := service.NewLeaveService(leaveRepo)

	if err := authService.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Admin account available: %s", cfg.AdminEmail)

	users, leaves, skipped := 0, 0, 0
	for _, demo := range seed.DemoEmployees() {
		user, err := authService.Register(ctx, demo.Name, demo.Email, demo.Password, model.RoleEmployee)
		if err == apperrors.ErrEmailTaken {
			log.Printf("Skipping %s: already registered", demo.Email)
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", demo.Email, err)
		}
		users++

		for _, req := range demo.Leaves {
			if _, err := leaveService.Create(ctx, user.ID, req); err != nil {
				log.Fatalf("Failed to seed leave request for %s: %v", demo.Email, err)
			}
			leaves++
		}
	}

	log.Printf("Seed complete: %d users created, %d leave requests created, %d skipped", users, leaves, skipped)
}
