package routes

import (
	"simaset-backend/internal/handler"
	"simaset-backend/internal/middleware"
	"simaset-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBarangRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewBarangRepository(db)
	kategoriRepo := repository.NewKategoriRepository(db)
	hdl := handler.NewBarangHandler(repo, kategoriRepo)

	api := app.Group("/api/barang", middleware.Auth)

	api.Get("/", hdl.GetAll)
	api.Get("/available", hdl.GetAvailable)
	api.Get("/kategori", hdl.GetAllKategori)
	api.Get("/:id", hdl.GetByID)

	// Pengelolaan barang khusus Admin
	api.Post("/", middleware.Role("Admin"), hdl.Create)
	api.Put("/:id", middleware.Role("Admin"), hdl.Update)
	api.Delete("/:id", middleware.Role("Admin"), hdl.Delete)
}
