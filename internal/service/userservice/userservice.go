package userservice

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	"github.com/GlebRadaev/deadpigeons/pkg/auth"
	"github.com/GlebRadaev/deadpigeons/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound    = domain.NotFound("user not found")
	ErrEmailTaken      = domain.Validation("email is already in use")
	ErrWrongPassword   = domain.Validation("current password is incorrect")
	ErrUserNotDeleted  = domain.NewError(domain.ErrInvalidOperation, "user is not deleted")
	ErrRestoreConflict = domain.Validation("another active user already uses this email")
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BalanceService interface {
	GetTotalApprovedAmountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type Service struct {
	userRepo       Repo
	balanceService BalanceService
	hashService    auth.HashServiceInterface
	now            func() time.Time
}

func New(repo Repo, balanceService BalanceService, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:       repo,
		balanceService: balanceService,
		hashService:    hashService,
		now:            time.Now,
	}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GetAll(ctx context.Context, includeDeleted bool) ([]domain.User, error) {
	return s.userRepo.FindAll(ctx, includeDeleted)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserDTO) (*domain.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.Validation(err.Error())
	}
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	if email != user.Email {
		other, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, ErrEmailTaken
		}
	}

	now := s.now().UTC()
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = email
	user.Role = req.Role
	user.UpdatedAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	zap.L().Info("user updated", zap.String("id", user.ID.String()))
	return user, nil
}

// Delete soft-deletes the user unless permanent is set. A permanent delete
// also removes an already soft-deleted user along with its boards.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	user, err := s.userRepo.FindByID(ctx, id, permanent)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if permanent {
		if err := s.userRepo.Delete(ctx, id); err != nil {
			return err
		}
		zap.L().Info("user permanently deleted", zap.String("id", id.String()))
		return nil
	}
	if err := s.userRepo.SetDeleted(ctx, id, true, s.now().UTC()); err != nil {
		return err
	}
	zap.L().Info("user soft-deleted", zap.String("id", id.String()))
	return nil
}

func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.Deleted {
		return nil, ErrUserNotDeleted
	}
	other, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if other != nil {
		return nil, ErrRestoreConflict
	}
	now := s.now().UTC()
	if err := s.userRepo.SetDeleted(ctx, id, false, now); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrRestoreConflict
		}
		return nil, err
	}
	user.Deleted = false
	user.DeletedAt = nil
	user.UpdatedAt = &now
	zap.L().Info("user restored", zap.String("id", id.String()))
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, req dto.ChangePasswordDTO) error {
	if err := validate.Struct(req); err != nil {
		return domain.Validation(err.Error())
	}
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.hashService.ComparePassword(user.PasswordHash, req.CurrentPassword, user.Salt.String()) {
		return ErrWrongPassword
	}

	salt := uuid.New()
	hash, err := s.hashService.HashPassword(req.NewPassword, salt.String())
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return err
	}
	now := s.now().UTC()
	user.PasswordHash = hash
	user.Salt = salt
	user.UpdatedAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	zap.L().Info("password changed", zap.String("id", id.String()))
	return nil
}

// GetBalance returns the sum of the user's approved transactions.
func (s *Service) GetBalance(ctx context.Context, id uuid.UUID) (int, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return 0, err
	}
	return s.balanceService.GetTotalApprovedAmountByUser(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
