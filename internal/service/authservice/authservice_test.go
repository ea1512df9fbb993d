package authservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/internal/pg"
	"github.com/GlebRadaev/deadpigeons/pkg/auth"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(repo, txManager, hashService, jwtService, time.Hour)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	valid := dto.RegisterRequestDTO{FirstName: "Ada", LastName: "Lovelace", Email: " Ada@Example.com ", Password: "secret123"}

	tests := []struct {
		name          string
		req           dto.RegisterRequestDTO
		prepareMock   func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface)
		expectedToken string
		expectedError error
		expectedKind  error
	}{
		{
			name: "Successful registration",
			req:  valid,
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
				hash.EXPECT().HashPassword("secret123", gomock.Any()).Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, "ada@example.com", user.Email)
					assert.Equal(t, domain.RoleUser, user.Role)
					assert.Equal(t, "hashed", user.PasswordHash)
					assert.NotEqual(t, uuid.Nil, user.Salt)
					return user, nil
				})
				jwt.EXPECT().GenerateJWT(gomock.Any(), fixedNow.Add(time.Hour)).DoAndReturn(func(claims auth.Claims, exp time.Time) (string, error) {
					assert.Equal(t, domain.RoleUser, claims.Role)
					assert.Equal(t, "Ada Lovelace", claims.Name)
					return "token", nil
				})
			},
			expectedToken: "token",
		},
		{
			name:         "Invalid email",
			req:          dto.RegisterRequestDTO{FirstName: "Ada", LastName: "Lovelace", Email: "nope", Password: "secret123"},
			prepareMock:  func(*MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {},
			expectedKind: domain.ErrValidation,
		},
		{
			name:         "Short password",
			req:          dto.RegisterRequestDTO{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "123"},
			prepareMock:  func(*MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {},
			expectedKind: domain.ErrValidation,
		},
		{
			name: "Email already taken",
			req:  valid,
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(&domain.User{Email: "ada@example.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Unique violation on insert",
			req:  valid,
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
				hash.EXPECT().HashPassword("secret123", gomock.Any()).Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Repository error",
			req:  valid,
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hash, jwt := NewMock(t)
			tt.prepareMock(repo, hash, jwt)

			token, err := service.Register(context.Background(), tt.req)
			switch {
			case tt.expectedKind != nil:
				assert.ErrorIs(t, err, tt.expectedKind)
			case tt.expectedError != nil:
				assert.EqualError(t, err, tt.expectedError.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	salt := uuid.New()
	user := &domain.User{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "hashed", Salt: salt, Role: domain.RoleAdmin}
	req := dto.LoginRequestDTO{Email: "ADA@example.com", Password: "secret123"}

	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface)
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful login",
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
				hash.EXPECT().ComparePassword("hashed", "secret123", salt.String()).Return(true)
				jwt.EXPECT().GenerateJWT(auth.Claims{UserID: user.ID, Role: domain.RoleAdmin, Email: user.Email, Name: "Ada Lovelace"}, fixedNow.Add(time.Hour)).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name: "Unknown email",
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
				hash.EXPECT().ComparePassword("hashed", "secret123", salt.String()).Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "Token generation fails",
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
				hash.EXPECT().ComparePassword("hashed", "secret123", salt.String()).Return(true)
				jwt.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).Return("", errors.New("jwt secret is not configured"))
			},
			expectedError: errors.New("jwt secret is not configured"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hash, jwt := NewMock(t)
			tt.prepareMock(repo, hash, jwt)

			token, err := service.Login(context.Background(), req)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}

func TestLogin_InvalidCredentialsAreAuthenticationErrors(t *testing.T) {
	assert.ErrorIs(t, ErrInvalidCredentials, domain.ErrAuthentication)
	assert.ErrorIs(t, ErrInvalidToken, domain.ErrAuthentication)
}

func TestCreateFirstAdminIfNoneExists(t *testing.T) {
	req := dto.SetupAdminRequestDTO{FirstName: "Jerne", LastName: "IF", Email: "admin@jerneif.dk", Password: "supersecret"}

	tests := []struct {
		name          string
		req           dto.SetupAdminRequestDTO
		prepareMock   func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface)
		expectedError error
	}{
		{
			name: "Creates admin on empty database",
			req:  req,
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				gomock.InOrder(
					repo.EXPECT().LockForSetup(gomock.Any()).Return(nil),
					repo.EXPECT().Count(gomock.Any()).Return(0, nil),
				)
				repo.EXPECT().FindByEmail(gomock.Any(), "admin@jerneif.dk").Return(nil, nil)
				hash.EXPECT().HashPassword("supersecret", gomock.Any()).Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, domain.RoleAdmin, user.Role)
					return user, nil
				})
				jwt.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).Return("token", nil)
			},
		},
		{
			name: "Users already exist",
			req:  req,
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().LockForSetup(gomock.Any()).Return(nil)
				repo.EXPECT().Count(gomock.Any()).Return(1, nil)
			},
			expectedError: ErrSetupCompleted,
		},
		{
			name: "Lock fails",
			req:  req,
			prepareMock: func(repo *MockRepo, hash *auth.MockHashServiceInterface, jwt *auth.MockJWTServiceInterface) {
				repo.EXPECT().LockForSetup(gomock.Any()).Return(errors.New("lock timeout"))
			},
			expectedError: errors.New("lock timeout"),
		},
		{
			name:          "Password too short for admin",
			req:           dto.SetupAdminRequestDTO{FirstName: "Jerne", LastName: "IF", Email: "admin@jerneif.dk", Password: "short"},
			prepareMock:   func(*MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {},
			expectedError: errors.New("password must be at least 8 characters long"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, hash, jwt := NewMock(t)
			tt.prepareMock(repo, hash, jwt)

			token, err := service.CreateFirstAdminIfNoneExists(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "token", token)
		})
	}
}

type setupLockKey struct{}

// setupStore keeps users in memory. Its table lock is held from LockForSetup
// until the surrounding transaction ends.
type setupStore struct {
	tableLock sync.Mutex
	mu        sync.Mutex
	users     []*domain.User
}

func (s *setupStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	held := new(bool)
	err := fn(context.WithValue(ctx, setupLockKey{}, held))
	if *held {
		s.tableLock.Unlock()
	}
	return err
}

func (s *setupStore) LockForSetup(ctx context.Context) error {
	s.tableLock.Lock()
	*ctx.Value(setupLockKey{}).(*bool) = true
	return nil
}

func (s *setupStore) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

func (s *setupStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *setupStore) FindByID(_ context.Context, id uuid.UUID, _ bool) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *setupStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	// Widen the window between the empty check and the insert.
	time.Sleep(time.Millisecond)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return user, nil
}

func TestCreateFirstAdminIfNoneExists_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	hash := auth.NewMockHashServiceInterface(ctrl)
	hash.EXPECT().HashPassword(gomock.Any(), gomock.Any()).Return("hashed", nil).AnyTimes()
	jwt := auth.NewMockJWTServiceInterface(ctrl)
	jwt.EXPECT().GenerateJWT(gomock.Any(), gomock.Any()).Return("token", nil).AnyTimes()

	store := &setupStore{}
	service := New(store, store, hash, jwt, time.Hour)

	const callers = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.CreateFirstAdminIfNoneExists(context.Background(), dto.SetupAdminRequestDTO{
				FirstName: "Admin",
				LastName:  "Candidate",
				Email:     fmt.Sprintf("admin%d@jerneif.dk", i),
				Password:  "supersecret",
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrSetupCompleted):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(callers-1), rejected.Load())
	count, _ := store.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestVerifyAndDecodeToken(t *testing.T) {
	userID := uuid.New()
	stored := &domain.User{ID: userID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: domain.RoleAdmin}

	tests := []struct {
		name          string
		token         string
		prepareMock   func(repo *MockRepo, jwt *auth.MockJWTServiceInterface)
		expectedRole  string
		expectedError error
	}{
		{
			name:  "Valid bearer token takes role from the stored user",
			token: "Bearer abc",
			prepareMock: func(repo *MockRepo, jwt *auth.MockJWTServiceInterface) {
				jwt.EXPECT().ValidateToken("abc").Return(&auth.Claims{UserID: userID, Role: domain.RoleUser}, nil)
				repo.EXPECT().FindByID(gomock.Any(), userID, false).Return(stored, nil)
			},
			expectedRole: domain.RoleAdmin,
		},
		{
			name:  "Invalid signature",
			token: "abc",
			prepareMock: func(repo *MockRepo, jwt *auth.MockJWTServiceInterface) {
				jwt.EXPECT().ValidateToken("abc").Return(nil, errors.New("invalid token"))
			},
			expectedError: ErrInvalidToken,
		},
		{
			name:  "User was deleted",
			token: "abc",
			prepareMock: func(repo *MockRepo, jwt *auth.MockJWTServiceInterface) {
				jwt.EXPECT().ValidateToken("abc").Return(&auth.Claims{UserID: userID}, nil)
				repo.EXPECT().FindByID(gomock.Any(), userID, false).Return(nil, nil)
			},
			expectedError: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _, jwt := NewMock(t)
			tt.prepareMock(repo, jwt)

			claims, err := service.VerifyAndDecodeToken(context.Background(), tt.token)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRole, claims.Role)
			assert.Equal(t, "Ada Lovelace", claims.Name)
		})
	}
}
