package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"simaset-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// errorResponse memetakan jenis error domain ke status HTTP supaya client
// bisa membedakan input salah, data tidak ada, konflik status, dan error server.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// saveUpload menyimpan file multipart ke ./uploads/<dir>/ dengan nama acak
// dan mengembalikan path relatifnya. Path ini disimpan apa adanya sebagai
// referensi bukti/foto; isi file tidak pernah diinterpretasi.
func saveUpload(c *fiber.Ctx, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	uploadDir := fmt.Sprintf("./uploads/%s", dir)
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	path := fmt.Sprintf("uploads/%s/%s", dir, filename)
	if err := c.SaveFile(file, "./"+path); err != nil {
		return "", err
	}
	return path, nil
}

// userIDFromCtx mengambil id user login yang diset middleware Auth.
func userIDFromCtx(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(float64); ok {
		return uint(id)
	}
	return 0
}
