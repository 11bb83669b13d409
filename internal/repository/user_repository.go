package repository

import (
	"errors"
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByRole(role string) ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("user %d tidak ditemukan", id)
	}
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFoundf("user dengan email %s tidak ditemukan", email)
	}
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &user, nil
}

func (r *userRepository) GetByRole(role string) ([]model.User, error) {
	var list []model.User
	if err := r.db.Where("role = ?", role).Find(&list).Error; err != nil {
		return nil, apperror.Store(err)
	}
	return list, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *userRepository) Delete(id uint) error {
	res := r.db.Delete(&model.User{}, id)
	if res.Error != nil {
		return apperror.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFoundf("user %d tidak ditemukan", id)
	}
	return nil
}
