package model

import "gorm.io/gorm"

// Status peminjaman. REJECTED dan RETURNED adalah status akhir:
// tidak ada transisi yang diizinkan keluar dari keduanya.
const (
	PeminjamanPending  = "PENDING"
	PeminjamanApproved = "APPROVED"
	PeminjamanRejected = "REJECTED"
	PeminjamanReturned = "RETURNED"
)

// Nilai flag notifikasi, dipakai peminjaman maupun pengaduan.
// "yes" berarti ada keputusan operator yang belum dilihat pemohon.
const (
	NotifikasiYes = "yes"
	NotifikasiNo  = "no"
)

type Peminjaman struct {
	gorm.Model
	UserID            uint   `json:"user_id"`
	BarangID          uint   `json:"barang_id"`
	StartDate         string `json:"start_date"` // Format YYYY-MM-DD
	EndDate           string `json:"end_date"`
	StartTime         string `json:"start_time"` // Format HH:MM
	EndTime           string `json:"end_time"`
	NamaKegiatan      string `json:"nama_kegiatan"`
	Keperluan         string `json:"keperluan"`
	BuktiPersetujuan  string `json:"bukti_persetujuan"`
	BuktiPengembalian string `json:"bukti_pengembalian"` // Kosong sampai barang dikembalikan
	Catatan           string `json:"catatan"`            // Kosong sampai ada keputusan operator
	Notifikasi        string `json:"notifikasi" gorm:"default:no"`
	Status            string `json:"status" gorm:"default:PENDING"`

	// Relasi untuk Preload data barang dan pemohon
	Barang Barang `gorm:"foreignKey:BarangID" json:"barang"`
	User   User   `gorm:"foreignKey:UserID" json:"user"`
}
