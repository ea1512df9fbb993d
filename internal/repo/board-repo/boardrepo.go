package boardrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const boardColumns = "b.id, b.user_id, b.game_id, b.numbers, b.price, b.repeating, b.repeat_of, b.deleted, b.created_at, b.updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var board domain.Board
	err := row.Scan(
		&board.ID, &board.UserID, &board.GameID, &board.Numbers, &board.Price, &board.Repeating,
		&board.RepeatOf, &board.Deleted, &board.CreatedAt, &board.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Board, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list boards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	boards := make([]domain.Board, 0)
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			zap.L().Error("can't scan board", zap.Error(err))
			return nil, err
		}
		boards = append(boards, *board)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate boards", zap.Error(err))
		return nil, err
	}
	return boards, nil
}

// FindByID returns the live board only when it belongs to userID.
func (r *Repository) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Board, error) {
	query := "SELECT " + boardColumns + " FROM boards b WHERE b.id = $1 AND b.user_id = $2 AND NOT b.deleted"
	board, err := scanBoard(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find board", zap.Error(err))
		return nil, err
	}
	return board, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Board, error) {
	query := "SELECT " + boardColumns + " FROM boards b WHERE b.user_id = $1 AND ($2 OR NOT b.deleted) ORDER BY b.created_at DESC"
	return r.findMany(ctx, query, userID, includeDeleted)
}

func (r *Repository) FindActiveRepeating(ctx context.Context) ([]domain.Board, error) {
	query := `
		SELECT ` + boardColumns + `
		FROM boards b
		JOIN users u ON u.id = b.user_id
		WHERE b.repeating AND NOT b.deleted AND NOT u.deleted
		ORDER BY b.created_at
	`
	return r.findMany(ctx, query)
}

// FindPlayedIDs returns the ids of boards bound to gameID together with the
// ids of the repeating boards they were bought from.
func (r *Repository) FindPlayedIDs(ctx context.Context, gameID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	query := `
		SELECT id FROM boards WHERE game_id = $1 AND NOT deleted
		UNION
		SELECT repeat_of FROM boards WHERE game_id = $1 AND NOT deleted AND repeat_of IS NOT NULL
	`
	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		zap.L().Error("can't list played boards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan played board", zap.Error(err))
			return nil, err
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate played boards", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

func (r *Repository) HasRepeatInGame(ctx context.Context, sourceID, gameID uuid.UUID) (bool, error) {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM boards WHERE repeat_of = $1 AND game_id = $2 AND NOT deleted)"
	if err := r.db.QueryRow(ctx, query, sourceID, gameID).Scan(&exists); err != nil {
		zap.L().Error("can't check repeated board", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, board *domain.Board) error {
	query := `
		INSERT INTO boards (id, user_id, game_id, numbers, price, repeating, repeat_of, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		board.ID, board.UserID, board.GameID, board.Numbers, board.Price, board.Repeating,
		board.RepeatOf, board.CreatedAt, board.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't save board", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, board *domain.Board) error {
	query := `
		UPDATE boards
		SET numbers = $2, price = $3, repeating = $4, updated_at = $5
		WHERE id = $1 AND game_id IS NULL AND NOT deleted
	`
	tag, err := r.db.Exec(ctx, query, board.ID, board.Numbers, board.Price, board.Repeating, board.UpdatedAt)
	if err != nil {
		zap.L().Error("can't update board", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.ErrInvalidOperation, "board can no longer be changed")
	}
	return nil
}

// StopRepeating clears the repeating flag. It applies to played boards too.
func (r *Repository) StopRepeating(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	query := "UPDATE boards SET repeating = false, updated_at = $2 WHERE id = $1 AND NOT deleted"
	tag, err := r.db.Exec(ctx, query, id, updatedAt)
	if err != nil {
		zap.L().Error("can't stop repeating board", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("board not found")
	}
	return nil
}

func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := "UPDATE boards SET deleted = true, updated_at = now() WHERE id = $1 AND game_id IS NULL"
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete board", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.ErrInvalidOperation, "board can no longer be deleted")
	}
	return nil
}
