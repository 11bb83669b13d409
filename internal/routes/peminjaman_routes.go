package routes

import (
	"simaset-backend/internal/handler"
	"simaset-backend/internal/middleware"
	"simaset-backend/internal/repository"
	"simaset-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPeminjamanRoutes(app *fiber.App, db *gorm.DB, notifier usecase.Notifier) {
	repo := repository.NewPeminjamanRepository(db)
	uc := usecase.NewPeminjamanUsecase(repo, notifier)
	hdl := handler.NewPeminjamanHandler(uc)

	api := app.Group("/api/peminjaman", middleware.Auth)

	// Endpoint untuk pemohon
	api.Post("/", hdl.Create)
	api.Get("/track", hdl.Track)
	api.Get("/track/notifikasi", hdl.TrackUnseen)
	api.Put("/notifikasi", hdl.ClearNotifikasi)
	api.Get("/notifikasi/count", hdl.CountUnseenDecisions)
	api.Put("/return/:id", hdl.Return)

	// Endpoint untuk operator
	api.Get("/", middleware.Role("Admin"), hdl.GetAll)
	api.Put("/approve/:id", middleware.Role("Admin"), hdl.Approve)
	api.Put("/reject/:id", middleware.Role("Admin"), hdl.Reject)
	api.Get("/stats", middleware.Role("Admin"), hdl.Stats)
}
