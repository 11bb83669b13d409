package repository

import (
	"errors"
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"

	"gorm.io/gorm"
)

type BarangRepository interface {
	Create(barang *model.Barang) error
	GetAll() ([]model.Barang, error)
	GetAvailable(kategoriID uint) ([]model.Barang, error)
	GetByID(id uint) (*model.Barang, error)
	Update(barang *model.Barang) error
	Delete(id uint) error
}

type barangRepository struct {
	db *gorm.DB
}

func NewBarangRepository(db *gorm.DB) BarangRepository {
	return &barangRepository{db}
}

func (r *barangRepository) Create(barang *model.Barang) error {
	if err := r.db.Create(barang).Error; err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *barangRepository) GetAll() ([]model.Barang, error) {
	var list []model.Barang
	if err := r.db.Preload("Kategori").Find(&list).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

// GetAvailable mengembalikan barang yang bisa dipinjam. kategoriID 0 berarti
// tanpa filter kategori.
func (r *barangRepository) GetAvailable(kategoriID uint) ([]model.Barang, error) {
	query := r.db.Preload("Kategori").Where("available = ?", model.BarangAvailable)
	if kategoriID != 0 {
		query = query.Where("kategori_id = ?", kategoriID)
	}

	var list []model.Barang
	if err := query.Find(&list).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

func (r *barangRepository) GetByID(id uint) (*model.Barang, error) {
	var barang model.Barang
	err := r.db.Preload("Kategori").First(&barang, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("barang %d tidak ditemukan", id)
	}
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &barang, nil
}

func (r *barangRepository) Update(barang *model.Barang) error {
	if err := r.db.Save(barang).Error; err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *barangRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Barang{}, id)
	if res.Error != nil {
		return apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFoundf("barang %d tidak ditemukan", id)
	}
	return nil
}
