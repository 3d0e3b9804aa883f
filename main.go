package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"Manajemen-QR-Code/config"
	"Manajemen-QR-Code/repository"
	"Manajemen-QR-Code/router"
	"Manajemen-QR-Code/seeder"

	_ "Manajemen-QR-Code/docs"
	_ "time/tzdata"
)

// @title Manajemen QR Code API
// @version 1.0
// @description API untuk mengelola QR code milik user beserta riwayat scan-nya
// @termsOfService https://github.com/your-repo/terms/
//
// @contact.name API Support
// @contact.url https://github.com/your-repo
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name QR Codes
// @tag.description QR code management endpoints
//
// @tag.name Scan Events
// @tag.description Scan history endpoints
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()

	defer config.DisconnectDB()

	if os.Getenv("RUN_SEEDER") == "true" {
		userRepo := repository.NewUserRepository()
		qrRepo := repository.NewQRCodeRepository()
		scanRepo := repository.NewScanEventRepository()
		seededUsers := seeder.SeedUsers(userRepo)
		seeder.SeedQRCodes(qrRepo, scanRepo, seededUsers)
	}

	app := fiber.New()

	config.SetupCORS(app)

	app.Use(logger.New())

	router.SetupRoutes(app)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
