package usecase

import (
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"
	"simaset-backend/internal/repository"
	"strconv"
	"time"
)

type CreatePengaduanInput struct {
	UserID    uint
	Kategori  string
	Deskripsi string
	Lokasi    string
	Photo     string
}

// PengaduanStats adalah rekap pengaduan per status untuk dashboard, plus
// jumlah penugasan pelaksana yang belum selesai.
type PengaduanStats struct {
	Pending        int64 `json:"pending"`
	Disetujui      int64 `json:"disetujui"`
	Ditolak        int64 `json:"ditolak"`
	OnProgress     int64 `json:"on_progress"`
	Selesai        int64 `json:"selesai"`
	PelaksanaBelum int64 `json:"pelaksana_belum"`
}

type PengaduanUsecase struct {
	repo     repository.PengaduanRepository
	notifier Notifier
}

func NewPengaduanUsecase(repo repository.PengaduanRepository, notifier Notifier) *PengaduanUsecase {
	return &PengaduanUsecase{repo: repo, notifier: notifier}
}

// Create menyimpan pengaduan baru. Tanggal dan jam (HH:MM) diambil dari waktu
// server saat laporan masuk, bukan dari input client.
func (u *PengaduanUsecase) Create(input CreatePengaduanInput) (*model.Pengaduan, error) {
	if input.UserID == 0 {
		return nil, apperror.Validationf("user_id wajib diisi")
	}

	now := time.Now()
	p := &model.Pengaduan{
		UserID:     input.UserID,
		Kategori:   input.Kategori,
		Deskripsi:  input.Deskripsi,
		Lokasi:     input.Lokasi,
		Jam:        now.Format("15:04"),
		Date:       now,
		Photo:      input.Photo,
		Catatan:    "",
		Tanggapan:  "",
		Notifikasi: model.NotifikasiNo,
		Status:     model.PengaduanPending,
	}
	if err := u.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Approve memutuskan pengaduan PENDING menjadi APPROVED. Berbeda dengan
// peminjaman, catatan wajib diisi untuk keputusan pengaduan.
func (u *PengaduanUsecase) Approve(id uint, catatan string) (*model.Pengaduan, error) {
	return u.decide(id, model.PengaduanApproved, catatan, "Pengaduan disetujui")
}

func (u *PengaduanUsecase) Reject(id uint, catatan string) (*model.Pengaduan, error) {
	return u.decide(id, model.PengaduanRejected, catatan, "Pengaduan ditolak")
}

func (u *PengaduanUsecase) decide(id uint, status, catatan, subject string) (*model.Pengaduan, error) {
	if catatan == "" {
		return nil, apperror.Validationf("catatan wajib diisi")
	}

	existing, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.PengaduanPending {
		return nil, apperror.Conflictf("pengaduan %d berstatus %s, tidak bisa diputuskan", id, existing.Status)
	}

	p, err := u.repo.Decide(id, status, catatan)
	if err != nil {
		return nil, err
	}
	u.notifyDecision(p.UserID, subject, catatan)
	return p, nil
}

// AssignPelaksana menugaskan satu petugas ke satu pengaduan. Id diterima
// sebagai string dari form dan harus berupa bilangan bulat positif.
// Pengaduan berpindah ke ONPROGRESS dalam transaksi yang sama dengan
// pembuatan baris pelaksana.
func (u *PengaduanUsecase) AssignPelaksana(userID, pengaduanID string) (*model.Pelaksana, error) {
	uid, err := strconv.Atoi(userID)
	if err != nil || uid <= 0 {
		return nil, apperror.Validationf("user_id harus bilangan bulat positif")
	}
	pid, err := strconv.Atoi(pengaduanID)
	if err != nil || pid <= 0 {
		return nil, apperror.Validationf("pengaduan_id harus bilangan bulat positif")
	}

	existing, err := u.repo.GetByID(uint(pid))
	if err != nil {
		return nil, err
	}
	if existing.Status != model.PengaduanApproved && existing.Status != model.PengaduanOnProgress {
		return nil, apperror.Conflictf("pengaduan %d berstatus %s, belum bisa ditugaskan", pid, existing.Status)
	}

	pelaksana := &model.Pelaksana{
		UserID:      uint(uid),
		PengaduanID: uint(pid),
		TglSelesai:  nil,
		IsSelesai:   model.PelaksanaBelum,
	}
	if err := u.repo.AssignPelaksana(pelaksana); err != nil {
		return nil, err
	}
	return pelaksana, nil
}

// Feedback menutup pengaduan dengan tanggapan operator. Semua penugasan
// pelaksana pengaduan ini ikut ditutup massal dalam transaksi yang sama.
func (u *PengaduanUsecase) Feedback(id uint, tanggapan string) (*model.Pengaduan, int64, error) {
	if tanggapan == "" {
		return nil, 0, apperror.Validationf("tanggapan wajib diisi")
	}

	existing, err := u.repo.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	if existing.Status == model.PengaduanRejected || existing.Status == model.PengaduanCompleted {
		return nil, 0, apperror.Conflictf("pengaduan %d berstatus %s, sudah final", id, existing.Status)
	}

	p, closed, err := u.repo.Feedback(id, tanggapan)
	if err != nil {
		return nil, 0, err
	}
	u.notifyDecision(p.UserID, "Pengaduan selesai ditangani", tanggapan)
	return p, closed, nil
}

func (u *PengaduanUsecase) Track(userID uint) ([]model.Pengaduan, error) {
	return u.repo.GetByUserID(userID)
}

func (u *PengaduanUsecase) TrackUnseen(userID uint) ([]model.Pengaduan, error) {
	return u.repo.GetByUserIDUnseen(userID)
}

func (u *PengaduanUsecase) GetAll() ([]model.Pengaduan, error) {
	return u.repo.GetAll()
}

func (u *PengaduanUsecase) GetAllPelaksana() ([]model.Pelaksana, error) {
	return u.repo.GetAllPelaksana()
}

func (u *PengaduanUsecase) ClearNotifikasi(userID uint) error {
	affected, err := u.repo.ClearNotifikasi(userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFoundf("tidak ada pengaduan untuk user %d", userID)
	}
	return nil
}

func (u *PengaduanUsecase) CountUnseenDecisions(userID uint) (int64, error) {
	return u.repo.CountUnseenDecisions(userID)
}

func (u *PengaduanUsecase) Stats() (*PengaduanStats, error) {
	stats := &PengaduanStats{}
	pairs := []struct {
		status string
		dst    *int64
	}{
		{model.PengaduanPending, &stats.Pending},
		{model.PengaduanApproved, &stats.Disetujui},
		{model.PengaduanRejected, &stats.Ditolak},
		{model.PengaduanOnProgress, &stats.OnProgress},
		{model.PengaduanCompleted, &stats.Selesai},
	}
	for _, pair := range pairs {
		count, err := u.repo.CountByStatus(pair.status)
		if err != nil {
			return nil, err
		}
		*pair.dst = count
	}

	belum, err := u.repo.CountPelaksanaBelum()
	if err != nil {
		return nil, err
	}
	stats.PelaksanaBelum = belum

	return stats, nil
}

func (u *PengaduanUsecase) notifyDecision(userID uint, subject, message string) {
	if u.notifier == nil {
		return
	}
	go u.notifier.DecisionMade(userID, subject, message)
}
