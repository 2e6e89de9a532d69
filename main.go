package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"focus-quest-system/handlers"
	"focus-quest-system/middleware"
	"focus-quest-system/models"
	"focus-quest-system/services"
	"focus-quest-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{})

	// 🔐 GLOBAL: Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

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
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID, X-User-Roles",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Habit{},
		&models.HabitEntry{},
		&models.HabitStreak{},
		&models.Quest{},
		&models.FocusSession{},
		&models.Companion{},
		&models.Purchase{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	seedHabitCatalog(db)

	// Session fizzle penalty is tunable per deployment
	fizzlePenalty := int64(2)
	if v := os.Getenv("FIZZLE_COIN_PENALTY"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			fizzlePenalty = n
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	habitStore := services.NewGormHabitStore(db)
	profileStore := services.NewGormProfileStore(db)

	rewardService := services.NewRewardService(profileStore)
	habitService := services.NewHabitService(habitStore, rewardService)
	sessionService := services.NewSessionService(db, rewardService, rng, fizzlePenalty)
	questService := services.NewQuestService(db, rewardService)
	profileService := services.NewProfileService(db)
	companionService := services.NewCompanionService(db)
	shopService := services.NewShopService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auditor := workers.NewStreakAuditor(db)
	go workers.RunStreakAudit(ctx, auditor, 1*time.Hour)

	questService.StartDueDateScheduler()

	handlers.SetupHabitRoutes(app, habitService)
	handlers.SetupSessionRoutes(app, sessionService)
	handlers.SetupQuestRoutes(app, questService)
	handlers.SetupProfileRoutes(app, profileService)
	handlers.SetupCompanionRoutes(app, companionService)
	handlers.SetupShopRoutes(app, shopService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5100"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Streak audit worker running (hourly)")
	log.Println("✅ Quest due-date scheduler running (every 1m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}

// seedHabitCatalog inserts the default habit definitions, leaving existing
// rows (including user edits) untouched.
func seedHabitCatalog(db *gorm.DB) {
	for _, habit := range models.DefaultHabits {
		if err := db.Where("id = ?", habit.ID).FirstOrCreate(&habit).Error; err != nil {
			log.Printf("⚠️  Failed to seed habit %s: %v", habit.ID, err)
		}
	}
}
