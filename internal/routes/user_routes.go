package routes

import (
	"simaset-backend/internal/handler"
	"simaset-backend/internal/middleware"
	"simaset-backend/internal/repository"
	"simaset-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewUserHandler(uc)

	// Endpoint publik
	app.Post("/api/users/register", hdl.Register)
	app.Post("/api/users/login", hdl.Login)

	api := app.Group("/api/users", middleware.Auth)
	api.Get("/pelaksana", hdl.GetPelaksana)
	api.Get("/:id", hdl.GetByID)

	// Pengelolaan user khusus Admin
	api.Put("/:id", middleware.Role("Admin"), hdl.Update)
	api.Delete("/:id", middleware.Role("Admin"), hdl.Delete)
}
