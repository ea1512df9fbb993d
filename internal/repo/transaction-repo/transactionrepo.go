package transactionrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transactionColumns = "id, user_id, amount, mobilepay_reference, status, board_id, deleted, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var status string
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.MobilepayReference, &status, &t.BoardID, &t.Deleted, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TransactionStatus(status)
	return &t, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE id = $1 AND ($2 OR NOT deleted)"
	return r.findOne(ctx, query, id, includeDeleted)
}

// FindByReference prefers a pending or approved transaction over rejected ones,
// since a rejected reference may be submitted again.
func (r *Repository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE lower(mobilepay_reference) = lower($1) AND NOT deleted" +
		" ORDER BY status = 'rejected', created_at DESC LIMIT 1"
	return r.findOne(ctx, query, reference)
}

func (r *Repository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE $1 OR NOT deleted ORDER BY created_at DESC"
	return r.findMany(ctx, query, includeDeleted)
}

func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE user_id = $1 AND ($2 OR NOT deleted) ORDER BY created_at DESC"
	return r.findMany(ctx, query, userID, includeDeleted)
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE status = $1 AND NOT deleted ORDER BY created_at"
	return r.findMany(ctx, query, string(domain.TransactionPending))
}

func (r *Repository) CountPending(ctx context.Context) (int, error) {
	var count int
	query := "SELECT count(*) FROM transactions WHERE status = $1 AND NOT deleted"
	if err := r.db.QueryRow(ctx, query, string(domain.TransactionPending)).Scan(&count); err != nil {
		zap.L().Error("can't count pending transactions", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// SumApprovedByUser is the balance of a user: the sum of approved, non-deleted
// transaction amounts.
func (r *Repository) SumApprovedByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var sum int
	query := "SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND status = $2 AND NOT deleted"
	if err := r.db.QueryRow(ctx, query, userID, string(domain.TransactionApproved)).Scan(&sum); err != nil {
		zap.L().Error("can't sum approved transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, amount, mobilepay_reference, status, board_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.UserID, t.Amount, t.MobilepayReference, string(t.Status), t.BoardID, t.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

// SetStatus moves a pending transaction to status. It reports false when the
// transaction was no longer pending.
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error) {
	query := "UPDATE transactions SET status = $2 WHERE id = $1 AND status = $3 AND NOT deleted"
	tag, err := r.db.Exec(ctx, query, id, string(status), string(domain.TransactionPending))
	if err != nil {
		zap.L().Error("can't change transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	if _, err := r.db.Exec(ctx, "UPDATE transactions SET deleted = $2 WHERE id = $1", id, deleted); err != nil {
		zap.L().Error("can't change transaction deleted flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id); err != nil {
		zap.L().Error("can't delete transaction", zap.Error(err))
		return err
	}
	return nil
}
