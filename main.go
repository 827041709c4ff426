package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Nikita-Dem/StreetCoffeeSait/models"
	"github.com/Nikita-Dem/StreetCoffeeSait/routes"
	"github.com/Nikita-Dem/StreetCoffeeSait/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting Street Coffee API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&storage.Record{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve the storefront pages when they are deployed next to the API
	if _, err := os.Stat("./public"); err == nil {
		r.Static("/public", "./public")
		r.StaticFile("/", "./public/index.html")
	}

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase connects to Postgres when configured and falls back to the
// embedded SQLite database for local runs.
func initDatabase() *gorm.DB {
	// TranslateError maps driver duplicate-key errors onto
	// gorm.ErrDuplicatedKey, which the order-ID retry relies on.
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect DB: %v", err)
		}
		return db
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "streetcoffee.db"
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		log.Fatalf("❌ Failed to open embedded DB: %v", err)
	}
	return db
}
