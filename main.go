package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"venue_manager/config"
	"venue_manager/database"
	"venue_manager/router"
	"venue_manager/utils"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := utils.InitLogger(settings.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.AllowedOrigins(),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis(settings.RedisAddr)

	router.SetupRoutes(app)

	utils.Log.Info("listening", zap.String("port", settings.Port))
	if err := app.Listen(":" + settings.Port); err != nil {
		utils.Log.Fatal("server stopped", zap.Error(err))
	}
}
