package routes

import (
	"simaset-backend/internal/handler"
	"simaset-backend/internal/middleware"
	"simaset-backend/internal/repository"
	"simaset-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	peminjamanUC := usecase.NewPeminjamanUsecase(repository.NewPeminjamanRepository(db), nil)
	pengaduanUC := usecase.NewPengaduanUsecase(repository.NewPengaduanRepository(db), nil)
	hdl := handler.NewDashboardHandler(peminjamanUC, pengaduanUC)

	api := app.Group("/api/dashboard", middleware.Auth, middleware.Role("Admin"))
	api.Get("/stats", hdl.GetStats)
}
