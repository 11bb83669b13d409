package handler

import (
	"simaset-backend/internal/usecase"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type PeminjamanHandler struct {
	usecase *usecase.PeminjamanUsecase
}

func NewPeminjamanHandler(uc *usecase.PeminjamanUsecase) *PeminjamanHandler {
	return &PeminjamanHandler{usecase: uc}
}

type CreatePeminjamanRequest struct {
	BarangID     uint   `form:"barang_id" validate:"required"`
	StartDate    string `form:"start_date" validate:"required"`
	EndDate      string `form:"end_date" validate:"required"`
	StartTime    string `form:"start_time"`
	EndTime      string `form:"end_time"`
	NamaKegiatan string `form:"nama_kegiatan"`
	Keperluan    string `form:"keperluan"`
}

func (h *PeminjamanHandler) Create(c *fiber.Ctx) error {
	var req CreatePeminjamanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field wajib belum lengkap"})
	}

	// Bukti persetujuan opsional saat pengajuan
	buktiPersetujuan, _ := saveUpload(c, "bukti_persetujuan", "peminjaman")

	p, err := h.usecase.Create(usecase.CreatePeminjamanInput{
		UserID:           userIDFromCtx(c),
		BarangID:         req.BarangID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		NamaKegiatan:     req.NamaKegiatan,
		Keperluan:        req.Keperluan,
		BuktiPersetujuan: buktiPersetujuan,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengajuan peminjaman berhasil dikirim",
		"data":    p,
	})
}

type CatatanRequest struct {
	Catatan string `json:"catatan"`
}

func (h *PeminjamanHandler) Approve(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req CatatanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	p, err := h.usecase.Approve(uint(id), req.Catatan)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Peminjaman disetujui",
		"data":    p,
	})
}

func (h *PeminjamanHandler) Reject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req CatatanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	p, err := h.usecase.Reject(uint(id), req.Catatan)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Peminjaman ditolak",
		"data":    p,
	})
}

func (h *PeminjamanHandler) Return(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	// Bukti pengembalian wajib; usecase menolak kalau kosong
	buktiPengembalian, _ := saveUpload(c, "bukti_pengembalian", "pengembalian")

	p, err := h.usecase.Return(uint(id), buktiPengembalian)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Barang berhasil dikembalikan",
		"data":    p,
	})
}

func (h *PeminjamanHandler) Track(c *fiber.Ctx) error {
	list, err := h.usecase.Track(userIDFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat peminjaman",
		"data":    list,
	})
}

func (h *PeminjamanHandler) TrackUnseen(c *fiber.Ctx) error {
	list, err := h.usecase.TrackUnseen(userIDFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil notifikasi peminjaman",
		"data":    list,
	})
}

func (h *PeminjamanHandler) ClearNotifikasi(c *fiber.Ctx) error {
	if err := h.usecase.ClearNotifikasi(userIDFromCtx(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notifikasi peminjaman sudah dibersihkan"})
}

func (h *PeminjamanHandler) CountUnseenDecisions(c *fiber.Ctx) error {
	count, err := h.usecase.CountUnseenDecisions(userIDFromCtx(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Jumlah keputusan yang belum dilihat",
		"data":    fiber.Map{"count": count},
	})
}

func (h *PeminjamanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.GetAll()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil semua peminjaman",
		"data":    list,
	})
}

func (h *PeminjamanHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.usecase.Stats()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Statistik peminjaman",
		"data":    stats,
	})
}
