package routes

import (
	"simaset-backend/internal/handler"
	"simaset-backend/internal/middleware"
	"simaset-backend/internal/repository"
	"simaset-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPengaduanRoutes(app *fiber.App, db *gorm.DB, notifier usecase.Notifier) {
	repo := repository.NewPengaduanRepository(db)
	uc := usecase.NewPengaduanUsecase(repo, notifier)
	hdl := handler.NewPengaduanHandler(uc)

	api := app.Group("/api/pengaduan", middleware.Auth)

	// Endpoint untuk pelapor
	api.Post("/", hdl.Create)
	api.Get("/track", hdl.Track)
	api.Get("/track/notifikasi", hdl.TrackUnseen)
	api.Put("/notifikasi", hdl.ClearNotifikasi)
	api.Get("/notifikasi/count", hdl.CountUnseenDecisions)

	// Endpoint untuk operator
	api.Get("/", middleware.Role("Admin"), hdl.GetAll)
	api.Put("/approve/:id", middleware.Role("Admin"), hdl.Approve)
	api.Put("/reject/:id", middleware.Role("Admin"), hdl.Reject)
	api.Post("/pelaksana", middleware.Role("Admin"), hdl.AssignPelaksana)
	api.Get("/pelaksana", middleware.Role("Admin"), hdl.GetAllPelaksana)
	api.Put("/feedback/:id", middleware.Role("Admin"), hdl.Feedback)
	api.Get("/stats", middleware.Role("Admin"), hdl.Stats)
}
