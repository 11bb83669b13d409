package database

import (
	"log"
	"simaset-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Kategori Barang
	kategoris := []model.KategoriBarang{
		{NamaKategori: "Elektronik"},
		{NamaKategori: "Perlengkapan Acara"},
		{NamaKategori: "Kendaraan"},
	}
	for _, k := range kategoris {
		db.FirstOrCreate(&k, model.KategoriBarang{NamaKategori: k.NamaKategori})
	}

	// 2. Seed Barang contoh
	var elektronik model.KategoriBarang
	db.Where("nama_kategori = ?", "Elektronik").First(&elektronik)

	barangs := []model.Barang{
		{KategoriID: elektronik.ID, Name: "Proyektor Epson", Lokasi: "Gudang A", Kondisi: "Baik", Available: model.BarangAvailable},
		{KategoriID: elektronik.ID, Name: "Kamera Canon", Lokasi: "Gudang A", Kondisi: "Baik", Available: model.BarangAvailable},
	}
	for _, b := range barangs {
		db.FirstOrCreate(&b, model.Barang{Name: b.Name})
	}

	// 3. Seed akun Admin, Pelaksana, dan Pegawai pertama
	users := []struct {
		name, email, password, role string
	}{
		{"Administrator", "admin@simaset.local", "admin123", "Admin"},
		{"Petugas Satu", "petugas@simaset.local", "petugas123", "Pelaksana"},
		{"Pegawai Satu", "pegawai@simaset.local", "pegawai123", "Pegawai"},
	}
	for _, u := range users {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Gagal hash password untuk %s: %v", u.email, err)
			continue
		}
		user := model.User{
			Name:     u.name,
			Email:    u.email,
			Password: string(hashedPassword),
			Role:     u.role,
		}
		db.FirstOrCreate(&user, model.User{Email: u.email})
	}

	log.Println("Seeding selesai")
}
