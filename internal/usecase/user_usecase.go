package usecase

import (
	"simaset-backend/config"
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"
	"simaset-backend/internal/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	NoHP     string
}

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(input RegisterInput) (*model.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperror.Validationf("email dan password wajib diisi")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Store(err)
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     input.Role,
		NoHP:     input.NoHP,
	}
	if err := u.repo.Create(user); err != nil {
		// Kemungkinan besar email sudah terdaftar (unique constraint)
		return nil, apperror.Validationf("registrasi gagal, email mungkin sudah terdaftar")
	}
	return user, nil
}

// Login memverifikasi kredensial dan mengembalikan token JWT berisi
// user_id dan role, dipakai middleware Auth.
func (u *UserUsecase) Login(email, password string) (string, *model.User, error) {
	user, err := u.repo.GetByEmail(email)
	if err != nil {
		return "", nil, apperror.NotFoundf("email atau password salah")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.Validationf("email atau password salah")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Token berlaku 24 jam
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.GetEnv("JWT_SECRET", "rahasia-simaset")))
	if err != nil {
		return "", nil, apperror.Store(err)
	}

	return signed, user, nil
}

func (u *UserUsecase) GetByID(id uint) (*model.User, error) {
	return u.repo.GetByID(id)
}

// GetPelaksanaUsers mengembalikan user yang bisa ditugaskan menangani pengaduan.
func (u *UserUsecase) GetPelaksanaUsers() ([]model.User, error) {
	return u.repo.GetByRole("Pelaksana")
}

func (u *UserUsecase) Update(id uint, input RegisterInput) (*model.User, error) {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.NoHP != "" {
		user.NoHP = input.NoHP
	}
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Store(err)
		}
		user.Password = string(hashedPassword)
	}

	if err := u.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserUsecase) Delete(id uint) error {
	return u.repo.Delete(id)
}
