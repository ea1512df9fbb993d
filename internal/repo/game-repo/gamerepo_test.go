package gamerepo

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
	gameID    = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	createdAt = time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	columns   = []string{"id", "week", "year", "active", "winning_numbers", "published_at", "deleted", "created_at"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func gameRows() *pgxmock.Rows {
	return pgxmock.NewRows(columns).
		AddRow(gameID, 2, 2025, true, []int(nil), (*time.Time)(nil), false, createdAt)
}

func expectedGame() *domain.Game {
	return &domain.Game{ID: gameID, Week: 2, Year: 2025, Active: true, CreatedAt: createdAt}
}

func TestRepository_FindByID(t *testing.T) {
	query := regexp.QuoteMeta("FROM games WHERE id = $1 AND ($2 OR NOT deleted)")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Game
	}{
		{
			name: "Game found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(gameID, false).WillReturnRows(gameRows())
			},
			result: expectedGame(),
		},
		{
			name: "Game not found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(gameID, false).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(gameID, false).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			result, err := repo.FindByID(context.Background(), gameID, false)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByWeekAndYear(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM games WHERE week = $1 AND year = $2 AND NOT deleted")).
		WithArgs(2, 2025).
		WillReturnRows(gameRows())

	game, err := repo.FindByWeekAndYear(context.Background(), 2, 2025)

	assert.NoError(t, err)
	assert.Equal(t, expectedGame(), game)
}

func TestRepository_FindByYear(t *testing.T) {
	repo, mock := NewMock(t)
	published := createdAt.Add(72 * time.Hour)

	rows := pgxmock.NewRows(columns).
		AddRow(gameID, 2, 2025, false, []int{3, 7, 12}, &published, false, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("FROM games WHERE year = $1 AND ($2 OR NOT deleted) ORDER BY week DESC")).
		WithArgs(2025, true).
		WillReturnRows(rows)

	games, err := repo.FindByYear(context.Background(), 2025, true)

	assert.NoError(t, err)
	assert.Equal(t, []domain.Game{{
		ID: gameID, Week: 2, Year: 2025, WinningNumbers: []int{3, 7, 12}, PublishedAt: &published, CreatedAt: createdAt,
	}}, games)
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY year DESC, week DESC")).
		WithArgs(false).
		WillReturnError(errors.New("database error"))

	games, err := repo.FindAll(context.Background(), false)

	assert.Error(t, err)
	assert.Nil(t, games)
}

func TestRepository_ExistingWeeks(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT year, week FROM games WHERE NOT deleted")).
		WillReturnRows(pgxmock.NewRows([]string{"year", "week"}).AddRow(2025, 1).AddRow(2025, 2))

	weeks, err := repo.ExistingWeeks(context.Background())

	assert.NoError(t, err)
	assert.Len(t, weeks, 2)
	assert.Contains(t, weeks, domain.Week{Year: 2025, Week: 1})
	assert.Contains(t, weeks, domain.Week{Year: 2025, Week: 2})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	game := expectedGame()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO games (id, week, year, active, created_at)")).
		WithArgs(gameID, 2, 2025, true, createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), game))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Activation(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE games SET active = false WHERE active")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE games SET active = true WHERE id = $1 AND NOT deleted")).
		WithArgs(gameID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.DeactivateAll(context.Background()))
	assert.NoError(t, repo.SetActive(context.Background(), gameID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetWinningNumbers(t *testing.T) {
	published := createdAt.Add(time.Hour)
	query := regexp.QuoteMeta("WHERE id = $1 AND winning_numbers IS NULL")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		updated   bool
	}{
		{
			name: "Numbers stored",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(query).
					WithArgs(gameID, []int{3, 7, 12}, published).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name: "Numbers already set",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(query).
					WithArgs(gameID, []int{3, 7, 12}, published).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(query).
					WithArgs(gameID, []int{3, 7, 12}, published).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			updated, err := repo.SetWinningNumbers(context.Background(), gameID, []int{3, 7, 12}, published)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, updated)
			}
		})
	}
}

func TestRepository_SetDeletedAndDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE games SET deleted = $2 WHERE id = $1")).
		WithArgs(gameID, true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games WHERE id = $1")).
		WithArgs(gameID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.SetDeleted(context.Background(), gameID, true))
	assert.NoError(t, repo.Delete(context.Background(), gameID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActive(t *testing.T) {
	query := regexp.QuoteMeta("FROM games WHERE active AND NOT deleted")

	t.Run("Active game", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WillReturnRows(gameRows())

		game, err := repo.FindActive(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, expectedGame(), game)
	})

	t.Run("No active game", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)

		game, err := repo.FindActive(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, game)
	})
}

func TestRepository_Restore(t *testing.T) {
	query := regexp.QuoteMeta("UPDATE games SET deleted = false, active = $2 WHERE id = $1")

	t.Run("Restored active", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(query).WithArgs(gameID, true).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.Restore(context.Background(), gameID, true))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectExec(query).WithArgs(gameID, false).WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Restore(context.Background(), gameID, false))
	})
}

func TestRepository_HasBoards(t *testing.T) {
	query := regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM boards WHERE game_id = $1)")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    bool
	}{
		{
			name: "Boards exist",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(gameID).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			result: true,
		},
		{
			name: "No boards",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(gameID).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			result: false,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(gameID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			exists, err := repo.HasBoards(context.Background(), gameID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, exists)
			}
		})
	}
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM transactions WHERE status = 'pending' AND NOT deleted")).
		WithArgs(gameID).
		WillReturnRows(pgxmock.NewRows([]string{"boards", "revenue", "repeating", "pending"}).AddRow(4, 200, 2, 1))

	stats, err := repo.Stats(context.Background(), gameID)

	assert.NoError(t, err)
	assert.Equal(t, &domain.GameStats{
		GameID:                gameID,
		TotalBoards:           4,
		TotalRevenue:          200,
		ActiveRepeatingBoards: 2,
		PendingTransactions:   1,
	}, stats)
}
