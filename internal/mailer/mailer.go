// Package mailer mengirim email pemberitahuan keputusan operator.
// Sifatnya best-effort: flag notifikasi di database tetap jadi sumber
// kebenaran, kegagalan SMTP hanya dicatat di log.
package mailer

import (
	"log"
	"simaset-backend/config"
	"simaset-backend/internal/repository"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	userRepo repository.UserRepository
}

// New mengembalikan nil kalau SMTP_HOST tidak diset; usecase memperlakukan
// notifier nil sebagai "tidak ada kanal email".
func New(userRepo repository.UserRepository) *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}

	dialer := gomail.NewDialer(
		host,
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
	)

	return &Mailer{
		dialer:   dialer,
		from:     config.GetEnv("SMTP_FROM", "no-reply@simaset.local"),
		userRepo: userRepo,
	}
}

// DecisionMade mengirim email singkat ke pemilik record yang baru diputuskan.
func (m *Mailer) DecisionMade(userID uint, subject, message string) {
	user, err := m.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("mailer: user %d tidak ditemukan: %v", userID, err)
		return
	}
	if user.Email == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", message)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("mailer: gagal kirim ke %s: %v", user.Email, err)
	}
}
