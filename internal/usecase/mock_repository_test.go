package usecase_test

import (
	"simaset-backend/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPeminjamanRepository struct {
	mock.Mock
}

func (m *MockPeminjamanRepository) Create(p *model.Peminjaman) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPeminjamanRepository) GetByID(id uint) (*model.Peminjaman, error) {
	args := m.Called(id)
	if p, ok := args.Get(0).(*model.Peminjaman); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPeminjamanRepository) GetAll() ([]model.Peminjaman, error) {
	args := m.Called()
	return args.Get(0).([]model.Peminjaman), args.Error(1)
}

func (m *MockPeminjamanRepository) GetByUserID(userID uint) ([]model.Peminjaman, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Peminjaman), args.Error(1)
}

func (m *MockPeminjamanRepository) GetByUserIDUnseen(userID uint) ([]model.Peminjaman, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Peminjaman), args.Error(1)
}

func (m *MockPeminjamanRepository) Approve(id uint, catatan string) (*model.Peminjaman, error) {
	args := m.Called(id, catatan)
	if p, ok := args.Get(0).(*model.Peminjaman); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPeminjamanRepository) Reject(id uint, catatan string) (*model.Peminjaman, error) {
	args := m.Called(id, catatan)
	if p, ok := args.Get(0).(*model.Peminjaman); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPeminjamanRepository) Return(id uint, buktiPengembalian string) (*model.Peminjaman, error) {
	args := m.Called(id, buktiPengembalian)
	if p, ok := args.Get(0).(*model.Peminjaman); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPeminjamanRepository) ClearNotifikasi(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPeminjamanRepository) CountUnseenDecisions(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPeminjamanRepository) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

type MockPengaduanRepository struct {
	mock.Mock
}

func (m *MockPengaduanRepository) Create(p *model.Pengaduan) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPengaduanRepository) GetByID(id uint) (*model.Pengaduan, error) {
	args := m.Called(id)
	if p, ok := args.Get(0).(*model.Pengaduan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPengaduanRepository) GetAll() ([]model.Pengaduan, error) {
	args := m.Called()
	return args.Get(0).([]model.Pengaduan), args.Error(1)
}

func (m *MockPengaduanRepository) GetByUserID(userID uint) ([]model.Pengaduan, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Pengaduan), args.Error(1)
}

func (m *MockPengaduanRepository) GetByUserIDUnseen(userID uint) ([]model.Pengaduan, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Pengaduan), args.Error(1)
}

func (m *MockPengaduanRepository) Decide(id uint, status, catatan string) (*model.Pengaduan, error) {
	args := m.Called(id, status, catatan)
	if p, ok := args.Get(0).(*model.Pengaduan); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPengaduanRepository) AssignPelaksana(pelaksana *model.Pelaksana) error {
	args := m.Called(pelaksana)
	return args.Error(0)
}

func (m *MockPengaduanRepository) Feedback(id uint, tanggapan string) (*model.Pengaduan, int64, error) {
	args := m.Called(id, tanggapan)
	if p, ok := args.Get(0).(*model.Pengaduan); ok {
		return p, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockPengaduanRepository) ClearNotifikasi(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPengaduanRepository) CountUnseenDecisions(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPengaduanRepository) CountByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPengaduanRepository) GetAllPelaksana() ([]model.Pelaksana, error) {
	args := m.Called()
	return args.Get(0).([]model.Pelaksana), args.Error(1)
}

func (m *MockPengaduanRepository) CountPelaksanaBelum() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// fakeNotifier menangkap pemanggilan DecisionMade lewat channel supaya test
// bisa menunggu goroutine notifikasi tanpa sleep.
type fakeNotifier struct {
	calls chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan string, 1)}
}

func (f *fakeNotifier) DecisionMade(userID uint, subject, message string) {
	f.calls <- subject
}
