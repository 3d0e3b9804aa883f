package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Manajemen-QR-Code/config/middleware"
	"Manajemen-QR-Code/handlers"
	"Manajemen-QR-Code/repository"

	_ "Manajemen-QR-Code/docs"
)

func SetupRoutes(app *fiber.App) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	qrRepo := repository.NewQRCodeRepository()
	scanRepo := repository.NewScanEventRepository()

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	qrHandler := handlers.NewQRCodeHandler(qrRepo)
	scanHandler := handlers.NewScanEventHandler(qrRepo, scanRepo)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Manajemen QR Code API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	// User routes
	protectedUserGroup := api.Group("/users", middleware.AuthMiddleware())
	protectedUserGroup.Post("/change-password", authHandler.ChangePassword)

	// QR code routes, semuanya owner-scoped di belakang auth
	qrGroup := api.Group("/qrcodes", middleware.AuthMiddleware())
	qrGroup.Post("/", qrHandler.CreateQRCode)
	qrGroup.Get("/", qrHandler.GetAllQRCodes)
	qrGroup.Get("/:id", qrHandler.GetQRCodeByID)
	qrGroup.Put("/:id", qrHandler.UpdateQRCode)

	// Scan event routes menempel di QR code pemiliknya
	qrGroup.Post("/:id/scans", scanHandler.AddScanEvent)
	qrGroup.Get("/:id/scans", scanHandler.GetScanEvents)

	log.Println("Pendaftaran rute selesai")
}
