package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"catalog/internal/handlers"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/uploads"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=productiondb port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "secretKey")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables catalog event publishing
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	jwtSecret := viper.GetString("JWT_SECRET")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	uploadDir := viper.GetString("UPLOAD_DIR")

	// --- Database ---
	// The gorm handle is constructed here and closed on shutdown; nothing
	// else owns a connection.
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access underlying sql.DB: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Upload storage ---
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", uploadDir, err)
	}
	namer := uploads.NewNamer("/uploads", uploadDir)

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, mqClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService, namer)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// Previously uploaded images are served from the public prefix.
	app.Static("/uploads", uploadDir)

	authHandler.RegisterRoutes(app)
	categoryHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Catalog event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received catalog event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server gracefully stopped")
}
