// Package apperror berisi jenis-jenis error domain yang dipakai seluruh
// usecase dan repository, supaya handler bisa membedakan 400/404/409/500.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: input tidak lengkap atau tidak valid, ditolak sebelum ada write.
	ErrValidation = errors.New("data tidak valid")

	// ErrNotFound: id yang dirujuk tidak ada, atau update massal mengenai 0 baris.
	ErrNotFound = errors.New("data tidak ditemukan")

	// ErrConflict: transisi status yang tidak diizinkan dari status sekarang,
	// termasuk kalah balapan pada conditional update di dalam transaksi.
	ErrConflict = errors.New("status tidak mengizinkan aksi ini")

	// ErrStore: kegagalan database/transaksi yang bukan salah input caller.
	ErrStore = errors.New("kesalahan penyimpanan data")
)

// Validationf membungkus ErrValidation dengan pesan detail.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf membungkus ErrNotFound dengan pesan detail.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf membungkus ErrConflict dengan pesan detail.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Store membungkus error dari GORM sebagai ErrStore tanpa menghilangkan penyebab aslinya.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStore, err)
}
