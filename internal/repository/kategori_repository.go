package repository

import (
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"

	"gorm.io/gorm"
)

type KategoriRepository interface {
	GetAll() ([]model.KategoriBarang, error)
}

type kategoriRepository struct {
	db *gorm.DB
}

func NewKategoriRepository(db *gorm.DB) KategoriRepository {
	return &kategoriRepository{db}
}

func (r *kategoriRepository) GetAll() ([]model.KategoriBarang, error) {
	var list []model.KategoriBarang
	if err := r.db.Find(&list).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}
