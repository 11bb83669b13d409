package handler

import (
	"simaset-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler menggabungkan statistik kedua workflow untuk halaman
// admin: rekap peminjaman per status dan rekap pengaduan per status plus
// jumlah pelaksana yang masih bekerja.
type DashboardHandler struct {
	peminjaman *usecase.PeminjamanUsecase
	pengaduan  *usecase.PengaduanUsecase
}

func NewDashboardHandler(peminjaman *usecase.PeminjamanUsecase, pengaduan *usecase.PengaduanUsecase) *DashboardHandler {
	return &DashboardHandler{peminjaman: peminjaman, pengaduan: pengaduan}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	peminjamanStats, err := h.peminjaman.Stats()
	if err != nil {
		return errorResponse(c, err)
	}

	pengaduanStats, err := h.pengaduan.Stats()
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Statistik dashboard",
		"data": fiber.Map{
			"peminjaman": peminjamanStats,
			"pengaduan":  pengaduanStats,
		},
	})
}
