package gamerepo

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

const gameColumns = "id, week, year, active, winning_numbers, published_at, deleted, created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var game domain.Game
	err := row.Scan(
		&game.ID, &game.Week, &game.Year, &game.Active, &game.WinningNumbers,
		&game.PublishedAt, &game.Deleted, &game.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Game, error) {
	game, err := scanGame(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Game, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list games", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	games := make([]domain.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			zap.L().Error("can't scan game", zap.Error(err))
			return nil, err
		}
		games = append(games, *game)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate games", zap.Error(err))
		return nil, err
	}
	return games, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Game, error) {
	query := "SELECT " + gameColumns + " FROM games WHERE id = $1 AND ($2 OR NOT deleted)"
	return r.findOne(ctx, query, id, includeDeleted)
}

func (r *Repository) FindByWeekAndYear(ctx context.Context, week, year int) (*domain.Game, error) {
	query := "SELECT " + gameColumns + " FROM games WHERE week = $1 AND year = $2 AND NOT deleted"
	return r.findOne(ctx, query, week, year)
}

func (r *Repository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.Game, error) {
	query := "SELECT " + gameColumns + " FROM games WHERE $1 OR NOT deleted ORDER BY year DESC, week DESC"
	return r.findMany(ctx, query, includeDeleted)
}

func (r *Repository) FindByYear(ctx context.Context, year int, includeDeleted bool) ([]domain.Game, error) {
	query := "SELECT " + gameColumns + " FROM games WHERE year = $1 AND ($2 OR NOT deleted) ORDER BY week DESC"
	return r.findMany(ctx, query, year, includeDeleted)
}

func (r *Repository) ExistingWeeks(ctx context.Context) (map[domain.Week]struct{}, error) {
	rows, err := r.db.Query(ctx, "SELECT year, week FROM games WHERE NOT deleted")
	if err != nil {
		zap.L().Error("can't list game weeks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	weeks := make(map[domain.Week]struct{})
	for rows.Next() {
		var w domain.Week
		if err := rows.Scan(&w.Year, &w.Week); err != nil {
			zap.L().Error("can't scan game week", zap.Error(err))
			return nil, err
		}
		weeks[w] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate game weeks", zap.Error(err))
		return nil, err
	}
	return weeks, nil
}

func (r *Repository) Create(ctx context.Context, game *domain.Game) error {
	query := `
		INSERT INTO games (id, week, year, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, game.ID, game.Week, game.Year, game.Active, game.CreatedAt); err != nil {
		zap.L().Error("can't save game", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeactivateAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "UPDATE games SET active = false WHERE active"); err != nil {
		zap.L().Error("can't deactivate games", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, "UPDATE games SET active = true WHERE id = $1 AND NOT deleted", id); err != nil {
		zap.L().Error("can't activate game", zap.Error(err))
		return err
	}
	return nil
}

// SetWinningNumbers reports false when the game already had numbers.
func (r *Repository) SetWinningNumbers(ctx context.Context, id uuid.UUID, numbers []int, publishedAt time.Time) (bool, error) {
	query := `
		UPDATE games
		SET winning_numbers = $2, published_at = $3
		WHERE id = $1 AND winning_numbers IS NULL
	`
	tag, err := r.db.Exec(ctx, query, id, numbers, publishedAt)
	if err != nil {
		zap.L().Error("can't set winning numbers", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetDeleted toggles the soft-delete flag. The active flag is left alone so a
// restore can bring the game back as it was.
func (r *Repository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	if _, err := r.db.Exec(ctx, "UPDATE games SET deleted = $2 WHERE id = $1", id, deleted); err != nil {
		zap.L().Error("can't change game deleted flag", zap.Error(err))
		return err
	}
	return nil
}

// FindActive returns the active game that is not deleted, or nil.
func (r *Repository) FindActive(ctx context.Context) (*domain.Game, error) {
	query := "SELECT " + gameColumns + " FROM games WHERE active AND NOT deleted"
	return r.findOne(ctx, query)
}

func (r *Repository) Restore(ctx context.Context, id uuid.UUID, active bool) error {
	query := "UPDATE games SET deleted = false, active = $2 WHERE id = $1"
	if _, err := r.db.Exec(ctx, query, id, active); err != nil {
		zap.L().Error("can't restore game", zap.Error(err))
		return err
	}
	return nil
}

// HasBoards reports whether any board, deleted or not, references the game.
func (r *Repository) HasBoards(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM boards WHERE game_id = $1)", id).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check game boards", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM games WHERE id = $1", id); err != nil {
		zap.L().Error("can't delete game", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Stats(ctx context.Context, gameID uuid.UUID) (*domain.GameStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM boards WHERE game_id = $1 AND NOT deleted),
			(SELECT COALESCE(SUM(price), 0) FROM boards WHERE game_id = $1 AND NOT deleted),
			(SELECT count(*) FROM boards b JOIN users u ON u.id = b.user_id
				WHERE b.repeating AND NOT b.deleted AND NOT u.deleted),
			(SELECT count(*) FROM transactions WHERE status = 'pending' AND NOT deleted)
	`
	stats := domain.GameStats{GameID: gameID}
	err := r.db.QueryRow(ctx, query, gameID).Scan(
		&stats.TotalBoards, &stats.TotalRevenue, &stats.ActiveRepeatingBoards, &stats.PendingTransactions,
	)
	if err != nil {
		zap.L().Error("can't compute game stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
