package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"leaderboard-system/handlers"
	"leaderboard-system/models"
	"leaderboard-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultPort           = "5000"
	defaultDSN            = "host=localhost user=postgres password=postgres dbname=leaderboard port=5432 sslmode=disable"
	rankReconcileInterval = 1 * time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOriginsString,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("⚠️  DATABASE_URL not set, using local development defaults")
		dsn = defaultDSN
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.PointsHistory{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	broadcaster := services.NewBroadcaster()
	rankingService := services.NewRankingService(db)
	userService := services.NewUserService(db, rankingService, broadcaster)
	claimService := services.NewClaimService(db, rankingService, broadcaster)
	historyService := services.NewHistoryService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := userService.SeedDefaultUsers(ctx); err != nil {
		log.Fatal("failed to seed default users:", err)
	}

	handlers.SetupLeaderboardRoutes(app, userService, claimService, historyService, broadcaster)

	sched, err := rankingService.StartRankReconciler(rankReconcileInterval)
	if err != nil {
		log.Fatal("failed to start rank reconciler:", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Printf("✅ Rank reconciler running (every %s)", rankReconcileInterval)
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")

	if err := sched.Shutdown(); err != nil {
		log.Printf("Scheduler shutdown error: %v", err)
	}
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	broadcaster.Close()
}
