package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var (
	txID      = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	userID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	createdAt = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	columns   = []string{"id", "user_id", "amount", "mobilepay_reference", "status", "board_id", "deleted", "created_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func txRows(status string) *pgxmock.Rows {
	user := userID
	return pgxmock.NewRows(columns).
		AddRow(txID, &user, 200, "MP-1", status, (*uuid.UUID)(nil), false, createdAt)
}

func expectedTx(status domain.TransactionStatus) *domain.Transaction {
	user := userID
	return &domain.Transaction{
		ID: txID, UserID: &user, Amount: 200, MobilepayReference: "MP-1", Status: status, CreatedAt: createdAt,
	}
}

func TestRepository_FindByID(t *testing.T) {
	query := regexp.QuoteMeta("FROM transactions WHERE id = $1 AND ($2 OR NOT deleted)")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Transaction
	}{
		{
			name: "Transaction found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(txID, false).WillReturnRows(txRows("approved"))
			},
			result: expectedTx(domain.TransactionApproved),
		},
		{
			name: "Transaction not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(txID, false).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(txID, false).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByID(context.Background(), txID, false)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByReference(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(mobilepay_reference) = lower($1) AND NOT deleted ORDER BY status = 'rejected', created_at DESC LIMIT 1")).
		WithArgs("mp-1").
		WillReturnRows(txRows("pending"))

	tx, err := repo.FindByReference(context.Background(), "mp-1")

	assert.NoError(t, err)
	assert.Equal(t, expectedTx(domain.TransactionPending), tx)
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE $1 OR NOT deleted ORDER BY created_at DESC")).
		WithArgs(true).
		WillReturnRows(txRows("approved"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE user_id = $1 AND ($2 OR NOT deleted)")).
		WithArgs(userID, false).
		WillReturnRows(txRows("approved"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions WHERE status = $1 AND NOT deleted ORDER BY created_at")).
		WithArgs("pending").
		WillReturnRows(txRows("pending"))

	all, err := repo.FindAll(context.Background(), true)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Transaction{*expectedTx(domain.TransactionApproved)}, all)

	mine, err := repo.FindByUser(context.Background(), userID, false)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	pending, err := repo.FindPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.Transaction{*expectedTx(domain.TransactionPending)}, pending)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountPending(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM transactions WHERE status = $1 AND NOT deleted")).
		WithArgs("pending").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountPending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_SumApprovedByUser(t *testing.T) {
	query := regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND status = $2 AND NOT deleted")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		expected  int
	}{
		{
			name: "Deposits minus purchases",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(userID, "approved").
					WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(140))
			},
			expected: 140,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(userID, "approved").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			sum, err := repo.SumApprovedByUser(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, sum)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	tx := expectedTx(domain.TransactionPending)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions (id, user_id, amount, mobilepay_reference, status, board_id, created_at)")).
		WithArgs(txID, tx.UserID, 200, "MP-1", "pending", (*uuid.UUID)(nil), createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetStatus(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE transactions SET status = $2 WHERE id = $1 AND status = $3 AND NOT deleted")

	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "Pending transaction approved", affected: 1, expected: true},
		{name: "Transaction no longer pending", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			mock.ExpectExec(query).
				WithArgs(txID, "approved", "pending").
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := repo.SetStatus(context.Background(), txID, domain.TransactionApproved)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestRepository_SetDeletedAndDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE transactions SET deleted = $2 WHERE id = $1")).
		WithArgs(txID, false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM transactions WHERE id = $1")).
		WithArgs(txID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.SetDeleted(context.Background(), txID, false))
	assert.NoError(t, repo.Delete(context.Background(), txID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
