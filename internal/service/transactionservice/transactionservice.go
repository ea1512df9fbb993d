package transactionservice

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	"github.com/GlebRadaev/deadpigeons/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTransactionNotFound = domain.NotFound("transaction not found")
	ErrUserRequired        = domain.Validation("userId is required")
	ErrUserNotFound        = domain.Validation("user not found")
	ErrDuplicateReference  = domain.Validation("a transaction with this MobilePay reference already exists")
	ErrAlreadyApproved     = domain.NewError(domain.ErrInvalidOperation, "transaction is already approved")
	ErrAlreadyRejected     = domain.NewError(domain.ErrInvalidOperation, "transaction is already rejected")
	ErrNotPending          = domain.NewError(domain.ErrInvalidOperation, "transaction is no longer pending")
	ErrNotDeleted          = domain.NewError(domain.ErrInvalidOperation, "transaction is not deleted")
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	FindAll(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error)
	FindByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Transaction, error)
	FindPending(ctx context.Context) ([]domain.Transaction, error)
	CountPending(ctx context.Context) (int, error)
	SumApprovedByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, t *domain.Transaction) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (bool, error)
	SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	transactionRepo Repo
	now             func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		transactionRepo: repo,
		now:             time.Now,
	}
}

// Create records a transaction request. New transactions are pending until an
// administrator approves them.
func (s *Service) Create(ctx context.Context, req dto.CreateTransactionDTO) (*domain.Transaction, error) {
	req.MobilepayReference = strings.TrimSpace(req.MobilepayReference)
	if err := validate.Struct(req); err != nil {
		return nil, domain.Validation(err.Error())
	}
	if req.UserID == nil || *req.UserID == uuid.Nil {
		return nil, ErrUserRequired
	}
	existing, err := s.transactionRepo.FindByReference(ctx, req.MobilepayReference)
	if err != nil {
		return nil, err
	}
	if claimsReference(existing) {
		return nil, ErrDuplicateReference
	}

	t := &domain.Transaction{
		ID:                 uuid.New(),
		UserID:             req.UserID,
		Amount:             req.Amount,
		MobilepayReference: req.MobilepayReference,
		Status:             domain.TransactionPending,
		BoardID:            req.BoardID,
		CreatedAt:          s.now().UTC(),
	}
	if err := s.transactionRepo.Create(ctx, t); err != nil {
		switch {
		case pg.IsUniqueViolation(err):
			return nil, ErrDuplicateReference
		case pg.IsForeignKeyViolation(err):
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	zap.L().Info("transaction created",
		zap.String("id", t.ID.String()),
		zap.String("reference", t.MobilepayReference),
		zap.Int("amount", t.Amount),
	)
	return t, nil
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.decide(ctx, id, domain.TransactionApproved)
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	return s.decide(ctx, id, domain.TransactionRejected)
}

func (s *Service) decide(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) (*domain.Transaction, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch t.Status {
	case domain.TransactionApproved:
		return nil, ErrAlreadyApproved
	case domain.TransactionRejected:
		return nil, ErrAlreadyRejected
	}
	ok, err := s.transactionRepo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotPending
	}
	t.Status = status
	zap.L().Info("transaction decided", zap.String("id", id.String()), zap.String("status", string(status)))
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	t, err := s.transactionRepo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	t, err := s.transactionRepo.FindByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

func (s *Service) GetAll(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error) {
	return s.transactionRepo.FindAll(ctx, includeDeleted)
}

func (s *Service) GetByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Transaction, error) {
	return s.transactionRepo.FindByUser(ctx, userID, includeDeleted)
}

func (s *Service) GetPending(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.FindPending(ctx)
}

func (s *Service) GetPendingCount(ctx context.Context) (int, error) {
	return s.transactionRepo.CountPending(ctx)
}

// GetTotalApprovedAmountByUser is the user's balance.
func (s *Service) GetTotalApprovedAmountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.transactionRepo.SumApprovedByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	t, err := s.transactionRepo.FindByID(ctx, id, permanent)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTransactionNotFound
	}
	if permanent {
		return s.transactionRepo.Delete(ctx, id)
	}
	return s.transactionRepo.SetDeleted(ctx, id, true)
}

func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	t, err := s.transactionRepo.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	if !t.Deleted {
		return nil, ErrNotDeleted
	}
	other, err := s.transactionRepo.FindByReference(ctx, t.MobilepayReference)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TransactionRejected && claimsReference(other) {
		return nil, ErrDuplicateReference
	}
	if err := s.transactionRepo.SetDeleted(ctx, id, false); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateReference
		}
		return nil, err
	}
	t.Deleted = false
	return t, nil
}

// claimsReference reports whether t holds its MobilePay reference. Rejected
// transactions release it.
func claimsReference(t *domain.Transaction) bool {
	return t != nil && t.Status != domain.TransactionRejected
}
