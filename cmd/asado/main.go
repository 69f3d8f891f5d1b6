package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/asado/internal/api"
	"github.com/terraincognita07/asado/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "asado.db"))
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		log.Fatalf("database handle failed: %v", err)
	}

	handler := api.NewHandler(database)

	app := fiber.New(fiber.Config{
		AppName:               "Asado",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Asado listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("database close failed: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
