package handler

import (
	"simaset-backend/internal/model"
	"simaset-backend/internal/usecase"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type PengaduanHandler struct {
	usecase *usecase.PengaduanUsecase
}

func NewPengaduanHandler(uc *usecase.PengaduanUsecase) *PengaduanHandler {
	return &PengaduanHandler{usecase: uc}
}

type CreatePengaduanRequest struct {
	Kategori  string `form:"kategori" validate:"required"`
	Deskripsi string `form:"deskripsi" validate:"required"`
	Lokasi    string `form:"lokasi"`
}

func (h *PengaduanHandler) Create(c *fiber.Ctx) error {
	var req CreatePengaduanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field wajib belum lengkap"})
	}

	// Foto pendukung opsional
	photo, _ := saveUpload(c, "photo", "pengaduan")

	p, err := h.usecase.Create(usecase.CreatePengaduanInput{
		UserID:    userIDFromCtx(c),
		Kategori:  req.Kategori,
		Deskripsi: req.Deskripsi,
		Lokasi:    req.Lokasi,
		Photo:     photo,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengaduan berhasil dikirim",
		"data":    p,
	})
}

func (h *PengaduanHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, h.usecase.Approve, "Pengaduan disetujui")
}

func (h *PengaduanHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, h.usecase.Reject, "Pengaduan ditolak")
}

func (h *PengaduanHandler) decide(c *fiber.Ctx, action func(uint, string) (*model.Pengaduan, error), message string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req CatatanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	p, err := action(uint(id), req.Catatan)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": message,
		"data":    p,
	})
}

type AssignPelaksanaRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	PengaduanID string `json:"pengaduan_id" validate:"required"`
}

func (h *PengaduanHandler) AssignPelaksana(c *fiber.Ctx) error {
	var req AssignPelaksanaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field wajib belum lengkap"})
	}

	pelaksana, err := h.usecase.AssignPelaksana(req.UserID, req.PengaduanID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pelaksana berhasil ditugaskan",
		"data":    pelaksana,
	})
}

type FeedbackRequest struct {
	Tanggapan string `json:"tanggapan"`
}

func (h *PengaduanHandler) Feedback(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	p, closed, err := h.usecase.Feedback(uint(id), req.Tanggapan)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Tanggapan berhasil dikirim",
		"data": fiber.Map{
			"pengaduan":         p,
			"pelaksana_ditutup": closed,
		},
	})
}

func (h *PengaduanHandler) Track(c *fiber.Ctx) error {
	list, err := h.usecase.Track(userIDFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat pengaduan",
		"data":    list,
	})
}

func (h *PengaduanHandler) TrackUnseen(c *fiber.Ctx) error {
	list, err := h.usecase.TrackUnseen(userIDFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil notifikasi pengaduan",
		"data":    list,
	})
}

func (h *PengaduanHandler) ClearNotifikasi(c *fiber.Ctx) error {
	if err := h.usecase.ClearNotifikasi(userIDFromCtx(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notifikasi pengaduan sudah dibersihkan"})
}

func (h *PengaduanHandler) CountUnseenDecisions(c *fiber.Ctx) error {
	count, err := h.usecase.CountUnseenDecisions(userIDFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Jumlah keputusan yang belum dilihat",
		"data":    fiber.Map{"count": count},
	})
}

func (h *PengaduanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.GetAll()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil semua pengaduan",
		"data":    list,
	})
}

func (h *PengaduanHandler) GetAllPelaksana(c *fiber.Ctx) error {
	list, err := h.usecase.GetAllPelaksana()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar pelaksana",
		"data":    list,
	})
}

func (h *PengaduanHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.usecase.Stats()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Statistik pengaduan",
		"data":    stats,
	})
}
