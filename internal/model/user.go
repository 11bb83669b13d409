package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role"` // Admin, Pegawai, atau Pelaksana
	NoHP     string `json:"no_hp"`
}
