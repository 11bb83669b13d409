package model

import "gorm.io/gorm"

// Nilai flag ketersediaan barang. Flag ini HANYA diubah oleh transaksi
// approve/return di workflow peminjaman, bukan oleh CRUD barang biasa.
const (
	BarangAvailable   = "available"
	BarangUnavailable = "unavailable"
)

type KategoriBarang struct {
	gorm.Model
	NamaKategori string `json:"nama_kategori" gorm:"unique;not null"`
}

type Barang struct {
	gorm.Model
	KategoriID uint   `json:"kategori_id"`
	Name       string `json:"name"`
	Lokasi     string `json:"lokasi"`
	Kondisi    string `json:"kondisi"`
	Photo      string `json:"photo"`
	Available  string `json:"available" gorm:"default:available"`

	// Relasi untuk Preload kategori pada response
	Kategori KategoriBarang `gorm:"foreignKey:KategoriID" json:"kategori"`
}
