package usecase

import (
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"
	"simaset-backend/internal/repository"
)

// Notifier dipanggil best-effort saat ada keputusan operator. Flag notifikasi
// yang tersimpan tetap jadi sumber kebenaran; notifier hanya kanal tambahan.
type Notifier interface {
	DecisionMade(userID uint, subject, message string)
}

type CreatePeminjamanInput struct {
	UserID           uint
	BarangID         uint
	StartDate        string
	EndDate          string
	StartTime        string
	EndTime          string
	NamaKegiatan     string
	Keperluan        string
	BuktiPersetujuan string
}

// PeminjamanStats adalah rekap jumlah peminjaman per status untuk dashboard.
type PeminjamanStats struct {
	Pending      int64 `json:"pending"`
	Dipinjam     int64 `json:"dipinjam"`
	Ditolak      int64 `json:"ditolak"`
	Dikembalikan int64 `json:"dikembalikan"`
}

type PeminjamanUsecase struct {
	repo     repository.PeminjamanRepository
	notifier Notifier
}

func NewPeminjamanUsecase(repo repository.PeminjamanRepository, notifier Notifier) *PeminjamanUsecase {
	return &PeminjamanUsecase{repo: repo, notifier: notifier}
}

// Create menyimpan pengajuan peminjaman baru dengan status PENDING.
// Ketersediaan barang sengaja TIDAK dicek di sini: beberapa pengajuan boleh
// antre untuk barang yang sama, operator yang memilih saat approval.
func (u *PeminjamanUsecase) Create(input CreatePeminjamanInput) (*model.Peminjaman, error) {
	if input.UserID == 0 {
		return nil, apperror.Validationf("user_id wajib diisi")
	}

	p := &model.Peminjaman{
		UserID:            input.UserID,
		BarangID:          input.BarangID,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		NamaKegiatan:      input.NamaKegiatan,
		Keperluan:         input.Keperluan,
		BuktiPersetujuan:  input.BuktiPersetujuan,
		BuktiPengembalian: "",
		Catatan:           "",
		Notifikasi:        model.NotifikasiNo,
		Status:            model.PeminjamanPending,
	}
	if err := u.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Approve menyetujui peminjaman PENDING. Efek samping (barang jadi
// unavailable) dijalankan atomik oleh repository; di sini hanya dicek
// dulu supaya transisi dari status akhir ditolak dengan jelas.
func (u *PeminjamanUsecase) Approve(id uint, catatan string) (*model.Peminjaman, error) {
	existing, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.PeminjamanPending {
		return nil, apperror.Conflictf("peminjaman %d berstatus %s, tidak bisa disetujui", id, existing.Status)
	}

	p, err := u.repo.Approve(id, catatan)
	if err != nil {
		return nil, err
	}
	u.notifyDecision(p.UserID, "Peminjaman disetujui", catatan)
	return p, nil
}

func (u *PeminjamanUsecase) Reject(id uint, catatan string) (*model.Peminjaman, error) {
	existing, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.PeminjamanPending {
		return nil, apperror.Conflictf("peminjaman %d berstatus %s, tidak bisa ditolak", id, existing.Status)
	}

	p, err := u.repo.Reject(id, catatan)
	if err != nil {
		return nil, err
	}
	u.notifyDecision(p.UserID, "Peminjaman ditolak", catatan)
	return p, nil
}

// Return mencatat pengembalian barang. Bukti pengembalian wajib ada sebelum
// write apa pun terjadi.
func (u *PeminjamanUsecase) Return(id uint, buktiPengembalian string) (*model.Peminjaman, error) {
	if buktiPengembalian == "" {
		return nil, apperror.Validationf("bukti pengembalian wajib diunggah")
	}

	existing, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.PeminjamanApproved {
		return nil, apperror.Conflictf("peminjaman %d berstatus %s, tidak sedang dipinjam", id, existing.Status)
	}

	return u.repo.Return(id, buktiPengembalian)
}

func (u *PeminjamanUsecase) Track(userID uint) ([]model.Peminjaman, error) {
	return u.repo.GetByUserID(userID)
}

func (u *PeminjamanUsecase) TrackUnseen(userID uint) ([]model.Peminjaman, error) {
	return u.repo.GetByUserIDUnseen(userID)
}

func (u *PeminjamanUsecase) GetAll() ([]model.Peminjaman, error) {
	return u.repo.GetAll()
}

// ClearNotifikasi menandai semua peminjaman milik user sudah dilihat.
// Nol baris berarti user tidak punya peminjaman sama sekali.
func (u *PeminjamanUsecase) ClearNotifikasi(userID uint) error {
	affected, err := u.repo.ClearNotifikasi(userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NotFoundf("tidak ada peminjaman untuk user %d", userID)
	}
	return nil
}

// CountUnseenDecisions menghitung badge "ada keputusan baru": peminjaman yang
// catatannya terisi dan notifikasinya masih yes.
func (u *PeminjamanUsecase) CountUnseenDecisions(userID uint) (int64, error) {
	return u.repo.CountUnseenDecisions(userID)
}

func (u *PeminjamanUsecase) Stats() (*PeminjamanStats, error) {
	stats := &PeminjamanStats{}
	pairs := []struct {
		status string
		dst    *int64
	}{
		{model.PeminjamanPending, &stats.Pending},
		{model.PeminjamanApproved, &stats.Dipinjam},
		{model.PeminjamanRejected, &stats.Ditolak},
		{model.PeminjamanReturned, &stats.Dikembalikan},
	}
	for _, pair := range pairs {
		count, err := u.repo.CountByStatus(pair.status)
		if err != nil {
			return nil, err
		}
		*pair.dst = count
	}
	return stats, nil
}

func (u *PeminjamanUsecase) notifyDecision(userID uint, subject, message string) {
	if u.notifier == nil {
		return
	}
	// Jalankan di background agar respon ke client tidak menunggu SMTP
	go u.notifier.DecisionMade(userID, subject, message)
}
