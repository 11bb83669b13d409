package repository

import (
	"errors"
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type PengaduanRepository interface {
	Create(p *model.Pengaduan) error
	GetByID(id uint) (*model.Pengaduan, error)
	GetAll() ([]model.Pengaduan, error)
	GetByUserID(userID uint) ([]model.Pengaduan, error)
	GetByUserIDUnseen(userID uint) ([]model.Pengaduan, error)
	Decide(id uint, status, catatan string) (*model.Pengaduan, error)
	AssignPelaksana(pelaksana *model.Pelaksana) error
	Feedback(id uint, tanggapan string) (*model.Pengaduan, int64, error)
	ClearNotifikasi(userID uint) (int64, error)
	CountUnseenDecisions(userID uint) (int64, error)
	CountByStatus(status string) (int64, error)
	GetAllPelaksana() ([]model.Pelaksana, error)
	CountPelaksanaBelum() (int64, error)
}

type pengaduanRepository struct {
	db *gorm.DB
}

func NewPengaduanRepository(db *gorm.DB) PengaduanRepository {
	return &pengaduanRepository{db}
}

func (r *pengaduanRepository) Create(p *model.Pengaduan) error {
	if err := r.db.Create(p).Error; err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *pengaduanRepository) GetByID(id uint) (*model.Pengaduan, error) {
	var p model.Pengaduan
	err := r.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("pengaduan %d tidak ditemukan", id)
	}
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &p, nil
}

func (r *pengaduanRepository) GetAll() ([]model.Pengaduan, error) {
	var list []model.Pengaduan
	err := r.db.Preload("User").Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

func (r *pengaduanRepository) GetByUserID(userID uint) ([]model.Pengaduan, error) {
	var list []model.Pengaduan
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

func (r *pengaduanRepository) GetByUserIDUnseen(userID uint) ([]model.Pengaduan, error) {
	var list []model.Pengaduan
	err := r.db.Where("user_id = ? AND notifikasi = ?", userID, model.NotifikasiYes).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

// Decide memutuskan pengaduan PENDING menjadi APPROVED atau REJECTED.
// Satu write saja, tidak ada efek samping ke entitas lain.
func (r *pengaduanRepository) Decide(id uint, status, catatan string) (*model.Pengaduan, error) {
	res := r.db.Model(&model.Pengaduan{}).
		Where("id = ? AND status = ?", id, model.PengaduanPending).
		Updates(map[string]interface{}{
			"status":     status,
			"catatan":    catatan,
			"notifikasi": model.NotifikasiYes,
		})
	if res.Error != nil {
		return nil, apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.Conflictf("pengaduan %d sudah diputuskan", id)
	}

	var p model.Pengaduan
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return &p, nil
}

// AssignPelaksana membuat baris penugasan dan menggeser status pengaduan ke
// ONPROGRESS dalam satu transaksi. Penugasan ulang saat sudah ONPROGRESS
// diizinkan; satu pengaduan boleh ditangani beberapa pelaksana.
func (r *pengaduanRepository) AssignPelaksana(pelaksana *model.Pelaksana) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pelaksana).Error; err != nil {
			return apperror.Store(err)
		}

		res := tx.Model(&model.Pengaduan{}).
			Where("id = ? AND status IN ?", pelaksana.PengaduanID,
				[]string{model.PengaduanApproved, model.PengaduanOnProgress}).
			Update("status", model.PengaduanOnProgress)
		if res.Error != nil {
			return apperror.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.Conflictf("pengaduan %d tidak bisa ditugaskan dari status sekarang", pelaksana.PengaduanID)
		}
		return nil
	})
}

// Feedback menutup pengaduan: status COMPLETED, tanggapan terisi, dan SEMUA
// baris pelaksana pengaduan ini ditutup massal (is_selesai Sudah, tgl_selesai
// sekarang) dalam transaksi yang sama. Mengembalikan jumlah pelaksana yang
// tertutup.
func (r *pengaduanRepository) Feedback(id uint, tanggapan string) (*model.Pengaduan, int64, error) {
	var p model.Pengaduan
	var closed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Pengaduan{}).
			Where("id = ? AND status IN ?", id,
				[]string{model.PengaduanPending, model.PengaduanApproved, model.PengaduanOnProgress}).
			Updates(map[string]interface{}{
				"status":     model.PengaduanCompleted,
				"tanggapan":  tanggapan,
				"notifikasi": model.NotifikasiYes,
			})
		if res.Error != nil {
			return apperror.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.Conflictf("pengaduan %d sudah selesai atau ditolak", id)
		}

		now := time.Now()
		res = tx.Model(&model.Pelaksana{}).
			Where("pengaduan_id = ?", id).
			Updates(map[string]interface{}{
				"is_selesai":  model.PelaksanaSudah,
				"tgl_selesai": now,
			})
		if res.Error != nil {
			return apperror.Store(res.Error)
		}
		closed = res.RowsAffected

		return tx.First(&p, id).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &p, closed, nil
}

func (r *pengaduanRepository) ClearNotifikasi(userID uint) (int64, error) {
	res := r.db.Model(&model.Pengaduan{}).
		Where("user_id = ?", userID).
		Update("notifikasi", model.NotifikasiNo)
	if res.Error != nil {
		return 0, apperror.Store(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *pengaduanRepository) CountUnseenDecisions(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Pengaduan{}).
		Where("user_id = ? AND catatan <> '' AND notifikasi = ?", userID, model.NotifikasiYes).
		Count(&count).Error
	if err != nil {
		return 0, apperror.Store(err)
	}
	return count, nil
}

func (r *pengaduanRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Pengaduan{}).Where("status = ?", status).Count(&count).Error
	if err != nil {
		return 0, apperror.Store(err)
	}
	return count, nil
}

func (r *pengaduanRepository) GetAllPelaksana() ([]model.Pelaksana, error) {
	var list []model.Pelaksana
	err := r.db.Preload("User").Preload("Pengaduan").
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

func (r *pengaduanRepository) CountPelaksanaBelum() (int64, error) {
	var count int64
	err := r.db.Model(&model.Pelaksana{}).
		Where("is_selesai = ?", model.PelaksanaBelum).
		Count(&count).Error
	if err != nil {
		return 0, apperror.Store(err)
	}
	return count, nil
}
