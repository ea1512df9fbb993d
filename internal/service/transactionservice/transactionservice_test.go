package transactionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, repo
}

func TestService_Create(t *testing.T) {
	userID := uuid.New()
	valid := dto.CreateTransactionDTO{UserID: &userID, Amount: 200, MobilepayReference: " MP-1 "}

	tests := []struct {
		name          string
		req           dto.CreateTransactionDTO
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name: "Starts pending",
			req:  valid,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, tx *domain.Transaction) error {
					assert.Equal(t, domain.TransactionPending, tx.Status)
					assert.Equal(t, "MP-1", tx.MobilepayReference)
					assert.Equal(t, fixedNow, tx.CreatedAt)
					return nil
				})
			},
		},
		{
			name:          "Missing reference",
			req:           dto.CreateTransactionDTO{UserID: &userID, Amount: 200, MobilepayReference: "   "},
			prepareMock:   func(*MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Zero amount",
			req:           dto.CreateTransactionDTO{UserID: &userID, MobilepayReference: "MP-1"},
			prepareMock:   func(*MockRepo) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Missing user",
			req:           dto.CreateTransactionDTO{Amount: 200, MobilepayReference: "MP-1"},
			prepareMock:   func(*MockRepo) {},
			expectedError: ErrUserRequired,
		},
		{
			name: "Duplicate reference in any casing",
			req:  valid,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").Return(&domain.Transaction{MobilepayReference: "mp-1"}, nil)
			},
			expectedError: ErrDuplicateReference,
		},
		{
			name: "Reference of a rejected transaction is reusable",
			req:  valid,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").
					Return(&domain.Transaction{MobilepayReference: "mp-1", Status: domain.TransactionRejected}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Concurrent duplicate hits the unique index",
			req:  valid,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrDuplicateReference,
		},
		{
			name: "Unknown user",
			req:  valid,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23503"})
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			got, err := service.Create(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.False(t, got.Approved())
		})
	}
}

func TestService_ApproveAndReject(t *testing.T) {
	id := uuid.New()
	pending := func() *domain.Transaction { return &domain.Transaction{ID: id, Status: domain.TransactionPending} }

	tests := []struct {
		name           string
		run            func(s *Service) (*domain.Transaction, error)
		prepareMock    func(repo *MockRepo)
		expectedStatus domain.TransactionStatus
		expectedError  error
	}{
		{
			name: "Approve pending",
			run:  func(s *Service) (*domain.Transaction, error) { return s.Approve(context.Background(), id) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(pending(), nil)
				repo.EXPECT().SetStatus(gomock.Any(), id, domain.TransactionApproved).Return(true, nil)
			},
			expectedStatus: domain.TransactionApproved,
		},
		{
			name: "Approve twice",
			run:  func(s *Service) (*domain.Transaction, error) { return s.Approve(context.Background(), id) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(&domain.Transaction{ID: id, Status: domain.TransactionApproved}, nil)
			},
			expectedError: ErrAlreadyApproved,
		},
		{
			name: "Approve rejected",
			run:  func(s *Service) (*domain.Transaction, error) { return s.Approve(context.Background(), id) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(&domain.Transaction{ID: id, Status: domain.TransactionRejected}, nil)
			},
			expectedError: ErrAlreadyRejected,
		},
		{
			name: "Approve unknown",
			run:  func(s *Service) (*domain.Transaction, error) { return s.Approve(context.Background(), id) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
		{
			name: "Approve loses a race",
			run:  func(s *Service) (*domain.Transaction, error) { return s.Approve(context.Background(), id) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(pending(), nil)
				repo.EXPECT().SetStatus(gomock.Any(), id, domain.TransactionApproved).Return(false, nil)
			},
			expectedError: ErrNotPending,
		},
		{
			name: "Reject pending",
			run:  func(s *Service) (*domain.Transaction, error) { return s.Reject(context.Background(), id) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(pending(), nil)
				repo.EXPECT().SetStatus(gomock.Any(), id, domain.TransactionRejected).Return(true, nil)
			},
			expectedStatus: domain.TransactionRejected,
		},
		{
			name: "Reject approved",
			run:  func(s *Service) (*domain.Transaction, error) { return s.Reject(context.Background(), id) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(&domain.Transaction{ID: id, Status: domain.TransactionApproved}, nil)
			},
			expectedError: ErrAlreadyApproved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			got, err := tt.run(service)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, got.Status)
		})
	}
}

func TestService_Queries(t *testing.T) {
	userID := uuid.New()
	txs := []domain.Transaction{{ID: uuid.New(), Status: domain.TransactionPending}}

	service, repo := NewMock(t)
	repo.EXPECT().FindAll(gomock.Any(), true).Return(txs, nil)
	repo.EXPECT().FindByUser(gomock.Any(), userID, false).Return(txs, nil)
	repo.EXPECT().FindPending(gomock.Any()).Return(txs, nil)
	repo.EXPECT().CountPending(gomock.Any()).Return(1, nil)
	repo.EXPECT().SumApprovedByUser(gomock.Any(), userID).Return(140, nil)
	repo.EXPECT().FindByReference(gomock.Any(), "MP-9").Return(nil, nil)

	got, err := service.GetAll(context.Background(), true)
	assert.NoError(t, err)
	assert.Equal(t, txs, got)

	got, err = service.GetByUser(context.Background(), userID, false)
	assert.NoError(t, err)
	assert.Equal(t, txs, got)

	got, err = service.GetPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, txs, got)

	count, err := service.GetPendingCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	balance, err := service.GetTotalApprovedAmountByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 140, balance)

	_, err = service.GetByReference(context.Background(), "MP-9")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestService_DeleteAndRestore(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name          string
		run           func(s *Service) error
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name: "Soft delete",
			run:  func(s *Service) error { return s.Delete(context.Background(), id, false) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(&domain.Transaction{ID: id}, nil)
				repo.EXPECT().SetDeleted(gomock.Any(), id, true).Return(nil)
			},
		},
		{
			name: "Permanent delete",
			run:  func(s *Service) error { return s.Delete(context.Background(), id, true) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, true).Return(&domain.Transaction{ID: id}, nil)
				repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
		},
		{
			name: "Delete unknown",
			run:  func(s *Service) error { return s.Delete(context.Background(), id, false) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
		{
			name: "Restore",
			run: func(s *Service) error {
				_, err := s.Restore(context.Background(), id)
				return err
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, true).Return(&domain.Transaction{ID: id, MobilepayReference: "MP-1", Deleted: true}, nil)
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").Return(nil, nil)
				repo.EXPECT().SetDeleted(gomock.Any(), id, false).Return(nil)
			},
		},
		{
			name: "Restore of a live transaction",
			run: func(s *Service) error {
				_, err := s.Restore(context.Background(), id)
				return err
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, true).Return(&domain.Transaction{ID: id}, nil)
			},
			expectedError: ErrNotDeleted,
		},
		{
			name: "Restore when the reference was reused",
			run: func(s *Service) error {
				_, err := s.Restore(context.Background(), id)
				return err
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, true).Return(&domain.Transaction{ID: id, MobilepayReference: "MP-1", Deleted: true}, nil)
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").Return(&domain.Transaction{ID: uuid.New()}, nil)
			},
			expectedError: ErrDuplicateReference,
		},
		{
			name: "Restore of a rejected transaction beside a live one",
			run: func(s *Service) error {
				_, err := s.Restore(context.Background(), id)
				return err
			},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, true).
					Return(&domain.Transaction{ID: id, MobilepayReference: "MP-1", Status: domain.TransactionRejected, Deleted: true}, nil)
				repo.EXPECT().FindByReference(gomock.Any(), "MP-1").
					Return(&domain.Transaction{ID: uuid.New(), Status: domain.TransactionPending}, nil)
				repo.EXPECT().SetDeleted(gomock.Any(), id, false).Return(nil)
			},
		},
		{
			name: "Repository error",
			run:  func(s *Service) error { return s.Delete(context.Background(), id, false) },
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByID(gomock.Any(), id, false).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			err := tt.run(service)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
