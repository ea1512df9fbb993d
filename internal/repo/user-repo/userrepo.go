package userrepo

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

const userColumns = "id, first_name, last_name, email, password_hash, salt, role, deleted, deleted_at, created_at, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.Salt,
		&user.Role, &user.Deleted, &user.DeletedAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1 AND ($2 OR NOT deleted)"
	return repo.findOne(ctx, query, id, includeDeleted)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE lower(email) = lower($1) AND NOT deleted"
	return repo.findOne(ctx, query, email)
}

// LockForUpdate loads a live user and holds its row lock until the surrounding
// transaction ends. Purchases by the same user are serialized through it.
func (repo *Repository) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1 AND NOT deleted FOR UPDATE"
	return repo.findOne(ctx, query, id)
}

func (repo *Repository) FindAll(ctx context.Context, includeDeleted bool) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE $1 OR NOT deleted ORDER BY created_at"
	rows, err := repo.db.Query(ctx, query, includeDeleted)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (repo *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := repo.db.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&count); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// LockForSetup takes a self-exclusive lock on the users table for the rest of
// the transaction. Plain reads are not blocked.
func (repo *Repository) LockForSetup(ctx context.Context) error {
	if _, err := repo.db.Exec(ctx, "LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		zap.L().Error("can't lock users table", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, salt, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := repo.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Salt, user.Role, user.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, role = $5, password_hash = $6, salt = $7, updated_at = $8
		WHERE id = $1
	`
	_, err := repo.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.Role, user.PasswordHash, user.Salt, user.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("can't update user", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool, at time.Time) error {
	var deletedAt *time.Time
	if deleted {
		deletedAt = &at
	}
	query := "UPDATE users SET deleted = $2, deleted_at = $3, updated_at = $4 WHERE id = $1"
	if _, err := repo.db.Exec(ctx, query, id, deleted, deletedAt, at); err != nil {
		zap.L().Error("can't change user deleted flag", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id); err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return err
	}
	return nil
}
