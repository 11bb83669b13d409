package usecase_test

import (
	"simaset-backend/internal/apperror"
	"simaset-backend/internal/model"
	"simaset-backend/internal/usecase"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestCreatePeminjaman_RequiresUserID verifies that a loan request without a
// requester is rejected before any write happens.
func TestCreatePeminjaman_RequiresUserID(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)

	// Act
	p, err := uc.Create(usecase.CreatePeminjamanInput{BarangID: 5})

	// Assert
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

// TestCreatePeminjaman_DefaultsToPending verifies the initial state of a new
// loan request: PENDING, no note, no return proof, notification off.
func TestCreatePeminjaman_DefaultsToPending(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("Create", mock.AnythingOfType("*model.Peminjaman")).Return(nil).Once()

	// Act
	p, err := uc.Create(usecase.CreatePeminjamanInput{
		UserID:       1,
		BarangID:     5,
		StartDate:    "2026-09-01",
		EndDate:      "2026-09-02",
		NamaKegiatan: "Rapat tahunan",
		Keperluan:    "Presentasi",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, model.PeminjamanPending, p.Status)
	assert.Equal(t, model.NotifikasiNo, p.Notifikasi)
	assert.Empty(t, p.Catatan)
	assert.Empty(t, p.BuktiPengembalian)
	repo.AssertExpectations(t)
}

// TestApprovePeminjaman_FromPending verifies the happy path: a PENDING loan
// is approved through the repository's atomic transition.
func TestApprovePeminjaman_FromPending(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("GetByID", uint(1)).Return(&model.Peminjaman{
		UserID: 1, BarangID: 5, Status: model.PeminjamanPending,
	}, nil).Once()
	repo.On("Approve", uint(1), "ok").Return(&model.Peminjaman{
		UserID: 1, BarangID: 5,
		Status:     model.PeminjamanApproved,
		Catatan:    "ok",
		Notifikasi: model.NotifikasiYes,
	}, nil).Once()

	// Act
	p, err := uc.Approve(1, "ok")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, model.PeminjamanApproved, p.Status)
	assert.Equal(t, "ok", p.Catatan)
	assert.Equal(t, model.NotifikasiYes, p.Notifikasi)
	repo.AssertExpectations(t)
}

// TestApprovePeminjaman_TerminalStatusConflicts verifies that approving an
// already decided loan is rejected instead of silently overwriting it.
func TestApprovePeminjaman_TerminalStatusConflicts(t *testing.T) {
	for _, status := range []string{
		model.PeminjamanApproved,
		model.PeminjamanRejected,
		model.PeminjamanReturned,
	} {
		// Arrange
		repo := new(MockPeminjamanRepository)
		uc := usecase.NewPeminjamanUsecase(repo, nil)
		repo.On("GetByID", uint(1)).Return(&model.Peminjaman{Status: status}, nil).Once()

		// Act
		p, err := uc.Approve(1, "ok")

		// Assert
		assert.Nil(t, p, "status %s", status)
		assert.ErrorIs(t, err, apperror.ErrConflict, "status %s", status)
		repo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
	}
}

// TestApprovePeminjaman_NotFound verifies the not-found error is passed
// through untouched so the handler can answer 404.
func TestApprovePeminjaman_NotFound(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("GetByID", uint(99)).Return(nil, apperror.NotFoundf("peminjaman 99 tidak ditemukan")).Once()

	// Act
	p, err := uc.Approve(99, "ok")

	// Assert
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

// TestApprovePeminjaman_NotifiesRequester verifies the optional email channel
// fires after a decision.
func TestApprovePeminjaman_NotifiesRequester(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	notifier := newFakeNotifier()
	uc := usecase.NewPeminjamanUsecase(repo, notifier)
	repo.On("GetByID", uint(1)).Return(&model.Peminjaman{Status: model.PeminjamanPending}, nil).Once()
	repo.On("Approve", uint(1), "ok").Return(&model.Peminjaman{
		UserID: 7, Status: model.PeminjamanApproved,
	}, nil).Once()

	// Act
	_, err := uc.Approve(1, "ok")

	// Assert
	assert.NoError(t, err)
	select {
	case subject := <-notifier.calls:
		assert.Equal(t, "Peminjaman disetujui", subject)
	case <-time.After(time.Second):
		t.Fatal("notifier tidak dipanggil")
	}
}

// TestRejectPeminjaman_FromPending verifies rejection is a single write with
// no barang side effect (the repository Reject op never touches barang).
func TestRejectPeminjaman_FromPending(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("GetByID", uint(2)).Return(&model.Peminjaman{Status: model.PeminjamanPending}, nil).Once()
	repo.On("Reject", uint(2), "stok dipakai").Return(&model.Peminjaman{
		Status:     model.PeminjamanRejected,
		Catatan:    "stok dipakai",
		Notifikasi: model.NotifikasiYes,
	}, nil).Once()

	// Act
	p, err := uc.Reject(2, "stok dipakai")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, model.PeminjamanRejected, p.Status)
	repo.AssertExpectations(t)
}

// TestReturnPeminjaman_RequiresProof verifies that returning without an
// uploaded proof fails validation and leaves everything untouched.
func TestReturnPeminjaman_RequiresProof(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)

	// Act
	p, err := uc.Return(1, "")

	// Assert
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
	repo.AssertNotCalled(t, "Return", mock.Anything, mock.Anything)
}

// TestReturnPeminjaman_OnlyFromApproved verifies a loan that is not currently
// borrowed cannot be returned.
func TestReturnPeminjaman_OnlyFromApproved(t *testing.T) {
	for _, status := range []string{
		model.PeminjamanPending,
		model.PeminjamanRejected,
		model.PeminjamanReturned,
	} {
		// Arrange
		repo := new(MockPeminjamanRepository)
		uc := usecase.NewPeminjamanUsecase(repo, nil)
		repo.On("GetByID", uint(1)).Return(&model.Peminjaman{Status: status}, nil).Once()

		// Act
		p, err := uc.Return(1, "uploads/pengembalian/img.png")

		// Assert
		assert.Nil(t, p, "status %s", status)
		assert.ErrorIs(t, err, apperror.ErrConflict, "status %s", status)
	}
}

// TestReturnPeminjaman_HappyPath verifies an approved loan is returned with
// the proof recorded.
func TestReturnPeminjaman_HappyPath(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("GetByID", uint(1)).Return(&model.Peminjaman{
		BarangID: 5, Status: model.PeminjamanApproved,
	}, nil).Once()
	repo.On("Return", uint(1), "uploads/pengembalian/img.png").Return(&model.Peminjaman{
		BarangID:          5,
		Status:            model.PeminjamanReturned,
		BuktiPengembalian: "uploads/pengembalian/img.png",
	}, nil).Once()

	// Act
	p, err := uc.Return(1, "uploads/pengembalian/img.png")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, model.PeminjamanReturned, p.Status)
	assert.Equal(t, "uploads/pengembalian/img.png", p.BuktiPengembalian)
	repo.AssertExpectations(t)
}

// TestClearNotifikasiPeminjaman verifies the zero-match case is surfaced as
// not found while a real match count succeeds.
func TestClearNotifikasiPeminjaman(t *testing.T) {
	// Arrange: user tanpa peminjaman
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("ClearNotifikasi", uint(3)).Return(int64(0), nil).Once()

	// Act + Assert
	assert.ErrorIs(t, uc.ClearNotifikasi(3), apperror.ErrNotFound)

	// Arrange: user dengan dua peminjaman
	repo.On("ClearNotifikasi", uint(4)).Return(int64(2), nil).Once()

	// Act + Assert
	assert.NoError(t, uc.ClearNotifikasi(4))
	repo.AssertExpectations(t)
}

// TestPeminjamanStats verifies the four global status counters are assembled
// from the store counts.
func TestPeminjamanStats(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("CountByStatus", model.PeminjamanPending).Return(int64(3), nil).Once()
	repo.On("CountByStatus", model.PeminjamanApproved).Return(int64(2), nil).Once()
	repo.On("CountByStatus", model.PeminjamanRejected).Return(int64(1), nil).Once()
	repo.On("CountByStatus", model.PeminjamanReturned).Return(int64(7), nil).Once()

	// Act
	stats, err := uc.Stats()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, int64(2), stats.Dipinjam)
	assert.Equal(t, int64(1), stats.Ditolak)
	assert.Equal(t, int64(7), stats.Dikembalikan)
	repo.AssertExpectations(t)
}

// TestCountUnseenDecisions verifies the badge count is read straight from the
// store filter (note non-empty AND notification yes).
func TestCountUnseenDecisions(t *testing.T) {
	// Arrange
	repo := new(MockPeminjamanRepository)
	uc := usecase.NewPeminjamanUsecase(repo, nil)
	repo.On("CountUnseenDecisions", uint(1)).Return(int64(2), nil).Once()

	// Act
	count, err := uc.CountUnseenDecisions(1)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
