package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

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
	ErrEmailTaken         = domain.Validation("email is already in use")
	ErrInvalidCredentials = domain.NewError(domain.ErrAuthentication, "invalid email or password")
	ErrInvalidToken       = domain.NewError(domain.ErrAuthentication, "invalid or expired token")
	ErrSetupCompleted     = domain.Validation("an administrator has already been set up")
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	LockForSetup(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	now         func() time.Time
}

func New(repo Repo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// Register creates a regular user and returns a signed token for it.
func (s *Service) Register(ctx context.Context, req dto.RegisterRequestDTO) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", domain.Validation(err.Error())
	}
	user, err := s.createUser(ctx, req.FirstName, req.LastName, req.Email, req.Password, domain.RoleUser)
	if err != nil {
		return "", err
	}
	zap.L().Info("user successfully registered", zap.String("email", user.Email))
	return s.GenerateToken(user)
}

func (s *Service) Login(ctx context.Context, req dto.LoginRequestDTO) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", domain.Validation(err.Error())
	}
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return "", err
	}
	if user == nil {
		zap.L().Info("login attempt for unknown email", zap.String("email", req.Email))
		return "", ErrInvalidCredentials
	}
	if !s.hashService.ComparePassword(user.PasswordHash, req.Password, user.Salt.String()) {
		zap.L().Info("login attempt with wrong password", zap.String("email", user.Email))
		return "", ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", user.Email))
	return s.GenerateToken(user)
}

// CreateFirstAdminIfNoneExists bootstraps the first administrator. It is only
// allowed while the users table is still empty. Concurrent calls serialize on
// a table lock so only one of them sees the empty table.
func (s *Service) CreateFirstAdminIfNoneExists(ctx context.Context, req dto.SetupAdminRequestDTO) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", domain.Validation(err.Error())
	}
	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.LockForSetup(ctx); err != nil {
			return err
		}
		count, err := s.userRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrSetupCompleted
		}
		user, err = s.createUser(ctx, req.FirstName, req.LastName, req.Email, req.Password, domain.RoleAdmin)
		return err
	})
	if err != nil {
		return "", err
	}
	zap.L().Info("first administrator created", zap.String("email", user.Email))
	return s.GenerateToken(user)
}

// VerifyAndDecodeToken validates the token signature and checks that the user
// behind it still exists. The role is taken from the stored user.
func (s *Service) VerifyAndDecodeToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(auth.ExtractToken(token))
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID, false)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	claims.Role = user.Role
	claims.Email = user.Email
	claims.Name = user.FullName()
	return claims, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	claims := auth.Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		Name:   user.FullName(),
	}
	token, err := s.jwtService.GenerateJWT(claims, s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) createUser(ctx context.Context, firstName, lastName, email, password, role string) (*domain.User, error) {
	email = normalizeEmail(email)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	salt := uuid.New()
	hash, err := s.hashService.HashPassword(password, salt.String())
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
