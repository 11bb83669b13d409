package handler

import (
	"simaset-backend/internal/model"
	"simaset-backend/internal/repository"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type BarangHandler struct {
	repo         repository.BarangRepository
	kategoriRepo repository.KategoriRepository
}

func NewBarangHandler(repo repository.BarangRepository, kategoriRepo repository.KategoriRepository) *BarangHandler {
	return &BarangHandler{repo: repo, kategoriRepo: kategoriRepo}
}

type CreateBarangRequest struct {
	Name       string `form:"name" validate:"required"`
	KategoriID uint   `form:"kategori_id" validate:"required"`
	Lokasi     string `form:"lokasi"`
	Kondisi    string `form:"kondisi"`
}

func (h *BarangHandler) Create(c *fiber.Ctx) error {
	var req CreateBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field wajib belum lengkap"})
	}

	photo, _ := saveUpload(c, "photo", "barang")

	barang := &model.Barang{
		Name:       req.Name,
		KategoriID: req.KategoriID,
		Lokasi:     req.Lokasi,
		Kondisi:    req.Kondisi,
		Photo:      photo,
		Available:  model.BarangAvailable,
	}
	if err := h.repo.Create(barang); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Barang berhasil ditambahkan",
		"data":    barang,
	})
}

func (h *BarangHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil semua barang",
		"data":    list,
	})
}

// GetAvailable mengembalikan barang yang siap dipinjam, bisa difilter
// kategori lewat query ?kategori_id=.
func (h *BarangHandler) GetAvailable(c *fiber.Ctx) error {
	kategoriID, _ := strconv.Atoi(c.Query("kategori_id", "0"))

	list, err := h.repo.GetAvailable(uint(kategoriID))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil barang tersedia",
		"data":    list,
	})
}

func (h *BarangHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	barang, err := h.repo.GetByID(uint(id))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data barang",
		"data":    barang,
	})
}

type UpdateBarangRequest struct {
	Name       string `form:"name"`
	KategoriID uint   `form:"kategori_id"`
	Lokasi     string `form:"lokasi"`
	Kondisi    string `form:"kondisi"`
}

func (h *BarangHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	barang, err := h.repo.GetByID(uint(id))
	if err != nil {
		return errorResponse(c, err)
	}

	var req UpdateBarangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// Flag available sengaja tidak bisa diubah dari sini; hanya workflow
	// peminjaman yang boleh menggesernya
	if req.Name != "" {
		barang.Name = req.Name
	}
	if req.KategoriID != 0 {
		barang.KategoriID = req.KategoriID
	}
	if req.Lokasi != "" {
		barang.Lokasi = req.Lokasi
	}
	if req.Kondisi != "" {
		barang.Kondisi = req.Kondisi
	}
	if photo, uploadErr := saveUpload(c, "photo", "barang"); uploadErr == nil {
		barang.Photo = photo
	}

	if err := h.repo.Update(barang); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Barang berhasil diperbarui",
		"data":    barang,
	})
}

func (h *BarangHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Barang berhasil dihapus"})
}

func (h *BarangHandler) GetAllKategori(c *fiber.Ctx) error {
	list, err := h.kategoriRepo.GetAll()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil daftar kategori",
		"data":    list,
	})
}
