package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/brigere/shield-api/config"
	"github.com/brigere/shield-api/db"
	authhandler "github.com/brigere/shield-api/internal/auth/handler"
	authrepo "github.com/brigere/shield-api/internal/auth/repository/postgres"
	"github.com/brigere/shield-api/internal/auth/revocation"
	authservice "github.com/brigere/shield-api/internal/auth/service"
	"github.com/brigere/shield-api/internal/logger"
	userhandler "github.com/brigere/shield-api/internal/user/handler"
	userrepo "github.com/brigere/shield-api/internal/user/repository/postgres"
	userservice "github.com/brigere/shield-api/internal/user/service"
	wallethandler "github.com/brigere/shield-api/internal/wallet/handler"
	walletrepo "github.com/brigere/shield-api/internal/wallet/repository/postgres"
	walletservice "github.com/brigere/shield-api/internal/wallet/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	if cfg.UsingDefaultSecrets() {
		log.Warn().Msg("Using default JWT secrets. Set JWT_SECRET and JWT_REFRESH_SECRET in production!")
	}

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer dbPool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer redisClient.Close()

	tokenService := authservice.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessExpiryHours, cfg.RefreshExpiryDays)
	revocationStore := revocation.NewStore(redisClient)

	userService := authservice.NewUserService(
		authrepo.NewUserRepository(dbPool), tokenService, authservice.NewPasswordService(), revocationStore, log)
	walletService := walletservice.NewWalletService(walletrepo.NewWalletRepository(dbPool), log)
	profileService := userservice.NewUserService(userrepo.NewUserRepository(dbPool), log)

	authRequired := authhandler.AuthRequired(tokenService, revocationStore, log)

	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(userService, log), authRequired)
	wallethandler.RegisterRoutes(app, wallethandler.NewWalletHandler(walletService, log), authRequired)
	userhandler.RegisterRoutes(app, userhandler.NewUserHandler(profileService, log), authRequired)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
