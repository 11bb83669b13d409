package model

import (
	"time"

	"gorm.io/gorm"
)

// Status pengaduan. REJECTED dan COMPLETED adalah status akhir.
const (
	PengaduanPending    = "PENDING"
	PengaduanApproved   = "APPROVED"
	PengaduanRejected   = "REJECTED"
	PengaduanOnProgress = "ONPROGRESS"
	PengaduanCompleted  = "COMPLETED"
)

// Flag penyelesaian tugas pelaksana.
const (
	PelaksanaBelum = "Belum"
	PelaksanaSudah = "Sudah"
)

type Pengaduan struct {
	gorm.Model
	UserID     uint      `json:"user_id"`
	Kategori   string    `json:"kategori"`
	Deskripsi  string    `json:"deskripsi"`
	Lokasi     string    `json:"lokasi"`
	Jam        string    `json:"jam"` // HH:MM saat laporan masuk
	Date       time.Time `json:"date"`
	Photo      string    `json:"photo"`
	Catatan    string    `json:"catatan"`   // Kosong sampai ada keputusan operator
	Tanggapan  string    `json:"tanggapan"` // Kosong sampai ada feedback
	Notifikasi string    `json:"notifikasi" gorm:"default:no"`
	Status     string    `json:"status" gorm:"default:PENDING"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

// Pelaksana adalah penugasan satu petugas ke satu pengaduan. Satu pengaduan
// boleh punya beberapa baris pelaksana; semuanya ditutup sekaligus saat
// pengaduan menerima feedback.
type Pelaksana struct {
	gorm.Model
	UserID      uint       `json:"user_id"`
	PengaduanID uint       `json:"pengaduan_id"`
	TglSelesai  *time.Time `json:"tgl_selesai"` // Null sampai pekerjaan selesai
	IsSelesai   string     `json:"is_selesai" gorm:"default:Belum"`

	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Pengaduan Pengaduan `gorm:"foreignKey:PengaduanID" json:"pengaduan"`
}
