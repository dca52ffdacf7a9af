package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/md-ali-0/skillsync-server/config"
	"github.com/md-ali-0/skillsync-server/db"
	authhandler "github.com/md-ali-0/skillsync-server/internal/auth/handler"
	authrepo "github.com/md-ali-0/skillsync-server/internal/auth/repository/postgres"
	"github.com/md-ali-0/skillsync-server/internal/auth/service"
	"github.com/md-ali-0/skillsync-server/internal/availability"
	"github.com/md-ali-0/skillsync-server/internal/mailer"
	"github.com/md-ali-0/skillsync-server/internal/response"
	"github.com/md-ali-0/skillsync-server/internal/review"
	"github.com/md-ali-0/skillsync-server/internal/session"
	"github.com/md-ali-0/skillsync-server/internal/skill"
	"github.com/md-ali-0/skillsync-server/internal/user"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	tokenService := service.NewTokenService(cfg)
	smtpMailer := mailer.NewSMTPMailer(cfg)

	userRepo := authrepo.NewPostgresRepository(pool)
	authService := service.NewAuthService(userRepo, tokenService, smtpMailer, cfg, logger)
	authHandler := authhandler.NewAuthHandler(authService)

	userService := user.NewService(user.NewPostgresRepository(pool))
	skillService := skill.NewService(skill.NewPostgresRepository(pool))
	sessionService := session.NewService(session.NewPostgresRepository(pool))
	availabilityService := availability.NewService(availability.NewPostgresRepository(pool))
	reviewService := review.NewService(review.NewPostgresRepository(pool))

	app := fiber.New(fiber.Config{
		AppName:      "skillsync-server",
		ErrorHandler: response.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return response.OK(c, "SkillSync backend running", nil)
	})

	api := app.Group("/api/v1")
	authhandler.RegisterRoutes(api, authHandler, tokenService)
	user.RegisterRoutes(api, user.NewHandler(userService), tokenService)
	skill.RegisterRoutes(api, skill.NewHandler(skillService), tokenService)
	session.RegisterRoutes(api, session.NewHandler(sessionService), tokenService)
	availability.RegisterRoutes(api, availability.NewHandler(availabilityService), tokenService)
	review.RegisterRoutes(api, review.NewHandler(reviewService), tokenService)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "requested path not found")
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("server started", "port", cfg.Port, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
