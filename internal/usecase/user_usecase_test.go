package usecase_test

import (
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"
	"simaset-backend/internal/usecase"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*model.User, error) {
	args := m.Called(id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByRole(role string) ([]model.User, error) {
	args := m.Called(role)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// TestRegister_HashesPassword verifies the stored password is a bcrypt hash
// of the submitted one, never the plaintext.
func TestRegister_HashesPassword(t *testing.T) {
	// Arrange
	repo := new(MockUserRepository)
	uc := usecase.NewUserUsecase(repo)
	var saved *model.User
	repo.On("Create", mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*model.User)
	}).Return(nil).Once()

	// Act
	user, err := uc.Register(usecase.RegisterInput{
		Name:     "Pegawai Satu",
		Email:    "pegawai@simaset.local",
		Password: "pegawai123",
		Role:     "Pegawai",
	})

	// Assert
	assert.NoError(t, err)
	assert.NotEqual(t, "pegawai123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("pegawai123")))
	repo.AssertExpectations(t)
}

// TestRegister_RequiresEmailAndPassword verifies empty credentials are
// rejected before touching the store.
func TestRegister_RequiresEmailAndPassword(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecase.NewUserUsecase(repo)

	_, err := uc.Register(usecase.RegisterInput{Name: "X"})

	assert.ErrorIs(t, err, apperror.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

// TestLogin_IssuesToken verifies a correct password yields a signed JWT.
func TestLogin_IssuesToken(t *testing.T) {
	// Arrange
	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.DefaultCost)
	repo := new(MockUserRepository)
	uc := usecase.NewUserUsecase(repo)
	repo.On("GetByEmail", "admin@simaset.local").Return(&model.User{
		Email:    "admin@simaset.local",
		Password: string(hashed),
		Role:     "Admin",
	}, nil).Once()

	// Act
	token, user, err := uc.Login("admin@simaset.local", "rahasia1")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Admin", user.Role)
}

// TestLogin_WrongPassword verifies a bad password never yields a token.
func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.DefaultCost)
	repo := new(MockUserRepository)
	uc := usecase.NewUserUsecase(repo)
	repo.On("GetByEmail", "admin@simaset.local").Return(&model.User{
		Email:    "admin@simaset.local",
		Password: string(hashed),
	}, nil).Once()

	// Act
	token, _, err := uc.Login("admin@simaset.local", "salah")

	// Assert
	assert.Empty(t, token)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

// TestLogin_UnknownEmail verifies an unknown account surfaces as not found.
func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecase.NewUserUsecase(repo)
	repo.On("GetByEmail", "siapa@simaset.local").Return(nil, apperror.NotFoundf("tidak ada")).Once()

	token, _, err := uc.Login("siapa@simaset.local", "apapun")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
