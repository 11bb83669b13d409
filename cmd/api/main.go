package main

import (
	"fmt"
	"simaset-backend/config"
	"simaset-backend/internal/mailer"
	"simaset-backend/internal/repository"
	"simaset-backend/internal/routes"
	"simaset-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	// Serve bukti/foto yang diunggah
	app.Static("/uploads", "./uploads")

	// Kanal email opsional; nil kalau SMTP tidak dikonfigurasi
	var notifier usecase.Notifier
	if m := mailer.New(repository.NewUserRepository(config.DB)); m != nil {
		notifier = m
		fmt.Println("   Email notifikasi aktif")
	}

	routes.SetupUserRoutes(app, config.DB)
	routes.SetupBarangRoutes(app, config.DB)
	routes.SetupPeminjamanRoutes(app, config.DB, notifier)
	routes.SetupPengaduanRoutes(app, config.DB, notifier)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
