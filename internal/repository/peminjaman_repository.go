package repository

import (
	"errors"
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"

	"gorm.io/gorm"
)

type PeminjamanRepository interface {
	Create(p *model.Peminjaman) error
	GetByID(id uint) (*model.Peminjaman, error)
	GetAll() ([]model.Peminjaman, error)
	GetByUserID(userID uint) ([]model.Peminjaman, error)
	GetByUserIDUnseen(userID uint) ([]model.Peminjaman, error)
	Approve(id uint, catatan string) (*model.Peminjaman, error)
	Reject(id uint, catatan string) (*model.Peminjaman, error)
	Return(id uint, buktiPengembalian string) (*model.Peminjaman, error)
	ClearNotifikasi(userID uint) (int64, error)
	CountUnseenDecisions(userID uint) (int64, error)
	CountByStatus(status string) (int64, error)
}

type peminjamanRepository struct {
	db *gorm.DB
}

func NewPeminjamanRepository(db *gorm.DB) PeminjamanRepository {
	return &peminjamanRepository{db}
}

func (r *peminjamanRepository) Create(p *model.Peminjaman) error {
	if err := r.db.Create(p).Error; err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *peminjamanRepository) GetByID(id uint) (*model.Peminjaman, error) {
	var p model.Peminjaman
	err := r.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("peminjaman %d tidak ditemukan", id)
	}
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &p, nil
}

func (r *peminjamanRepository) GetAll() ([]model.Peminjaman, error) {
	var list []model.Peminjaman
	err := r.db.Preload("Barang").Preload("User").
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

func (r *peminjamanRepository) GetByUserID(userID uint) ([]model.Peminjaman, error) {
	var list []model.Peminjaman
	err := r.db.Preload("Barang").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

func (r *peminjamanRepository) GetByUserIDUnseen(userID uint) ([]model.Peminjaman, error) {
	var list []model.Peminjaman
	err := r.db.Preload("Barang").
		Where("user_id = ? AND notifikasi = ?", userID, model.NotifikasiYes).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

// Approve menyetujui peminjaman dan menandai barangnya unavailable dalam satu
// transaksi. Kedua update bersyarat pada status sebelumnya: kalau peminjaman
// sudah bukan PENDING, atau barang sudah unavailable (dipinjam approval lain
// yang menang duluan), seluruh transaksi dibatalkan.
func (r *peminjamanRepository) Approve(id uint, catatan string) (*model.Peminjaman, error) {
	var p model.Peminjaman
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFoundf("peminjaman %d tidak ditemukan", id)
			}
			return apperror.Store(err)
		}

		res := tx.Model(&model.Peminjaman{}).
			Where("id = ? AND status = ?", id, model.PeminjamanPending).
			Updates(map[string]interface{}{
				"status":     model.PeminjamanApproved,
				"catatan":    catatan,
				"notifikasi": model.NotifikasiYes,
			})
		if res.Error != nil {
			return apperror.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.Conflictf("peminjaman %d sudah diputuskan", id)
		}

		res = tx.Model(&model.Barang{}).
			Where("id = ? AND available = ?", p.BarangID, model.BarangAvailable).
			Update("available", model.BarangUnavailable)
		if res.Error != nil {
			return apperror.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.Conflictf("barang %d sedang dipinjam", p.BarangID)
		}

		return tx.First(&p, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *peminjamanRepository) Reject(id uint, catatan string) (*model.Peminjaman, error) {
	var p model.Peminjaman
	res := r.db.Model(&model.Peminjaman{}).
		Where("id = ? AND status = ?", id, model.PeminjamanPending).
		Updates(map[string]interface{}{
			"status":     model.PeminjamanRejected,
			"catatan":    catatan,
			"notifikasi": model.NotifikasiYes,
		})
	if res.Error != nil {
		return nil, apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.Conflictf("peminjaman %d sudah diputuskan", id)
	}
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return &p, nil
}

// Return mencatat pengembalian dan memulihkan flag barang dalam satu
// transaksi, pola yang sama dengan Approve.
func (r *peminjamanRepository) Return(id uint, buktiPengembalian string) (*model.Peminjaman, error) {
	var p model.Peminjaman
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFoundf("peminjaman %d tidak ditemukan", id)
			}
			return apperror.Store(err)
		}

		res := tx.Model(&model.Peminjaman{}).
			Where("id = ? AND status = ?", id, model.PeminjamanApproved).
			Updates(map[string]interface{}{
				"status":             model.PeminjamanReturned,
				"bukti_pengembalian": buktiPengembalian,
			})
		if res.Error != nil {
			return apperror.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.Conflictf("peminjaman %d tidak sedang dipinjam", id)
		}

		if err := tx.Model(&model.Barang{}).
			Where("id = ?", p.BarangID).
			Update("available", model.BarangAvailable).Error; err != nil {
			return apperror.Store(err)
		}

		return tx.First(&p, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *peminjamanRepository) ClearNotifikasi(userID uint) (int64, error) {
	res := r.db.Model(&model.Peminjaman{}).
		Where("user_id = ?", userID).
		Update("notifikasi", model.NotifikasiNo)
	if res.Error != nil {
		return 0, apperror.Store(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *peminjamanRepository) CountUnseenDecisions(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Peminjaman{}).
		Where("user_id = ? AND catatan <> '' AND notifikasi = ?", userID, model.NotifikasiYes).
		Count(&count).Error
	if err != nil {
		return 0, apperror.Store(err)
	}
	return count, nil
}

func (r *peminjamanRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Peminjaman{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, apperror.Store(err)
	}
	return count, nil
}
