package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/auth"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/boards"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/games"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/transactions"
	"github.com/GlebRadaev/deadpigeons/internal/handlers/users"
	"github.com/GlebRadaev/deadpigeons/internal/service"
	pkgauth "github.com/GlebRadaev/deadpigeons/pkg/auth"
	appmiddleware "github.com/GlebRadaev/deadpigeons/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:        auth.NewMockService(ctrl),
		UserService:        users.NewMockService(ctrl),
		GameService:        games.NewMockService(ctrl),
		BoardService:       boards.NewMockService(ctrl),
		TransactionService: transactions.NewMockService(ctrl),
		RebuyService:       boards.NewMockRebuyer(ctrl),
		TokenVerifier:      pkgauth.NewMockTokenVerifier(ctrl),
	}

	h := New(services, appmiddleware.NewRateLimiter(1, 1))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.BoardHandler)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockGameHandler := NewMockGameHandler(ctrl)
	mockBoardHandler := NewMockBoardHandler(ctrl)
	mockTransactionHandler := NewMockTransactionHandler(ctrl)
	verifier := pkgauth.NewMockTokenVerifier(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().SetupFirstAdmin(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAuthHandler.EXPECT().WhoAmI(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockUserHandler.EXPECT().GetAll(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockUserHandler.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBoardHandler.EXPECT().GetMyBoards(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBoardHandler.EXPECT().ProcessRepeatingBoards(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockBoardHandler.EXPECT().StopRepeating(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().GetCurrentGame(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGameHandler.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockTransactionHandler.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockTransactionHandler.EXPECT().ApproveTransaction(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	player := &pkgauth.Claims{UserID: uuid.New(), Role: domain.RoleUser}
	admin := &pkgauth.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}
	verifier.EXPECT().VerifyAndDecodeToken(gomock.Any(), "player").Return(player, nil).AnyTimes()
	verifier.EXPECT().VerifyAndDecodeToken(gomock.Any(), "admin").Return(admin, nil).AnyTimes()
	verifier.EXPECT().VerifyAndDecodeToken(gomock.Any(), "expired").Return(nil, errors.New("invalid token")).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		UserHandler:        mockUserHandler,
		GameHandler:        mockGameHandler,
		BoardHandler:       mockBoardHandler,
		TransactionHandler: mockTransactionHandler,
		verifier:           verifier,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/Auth/Register", "", http.StatusOK},
		{"POST", "/api/Auth/Login", "", http.StatusOK},
		{"POST", "/api/Auth/SetupFirstAdmin", "", http.StatusOK},
		{"GET", "/api/Auth/WhoAmI", "", http.StatusUnauthorized},
		{"GET", "/api/Auth/WhoAmI", "Bearer player", http.StatusOK},
		{"GET", "/api/Auth/WhoAmI", "Bearer expired", http.StatusUnauthorized},
		{"GET", "/api/Users", "Bearer player", http.StatusForbidden},
		{"GET", "/api/Users", "Bearer admin", http.StatusOK},
		{"GET", "/api/Users/GetCurrentUser", "player", http.StatusOK},
		{"GET", "/api/Boards", "", http.StatusUnauthorized},
		{"GET", "/api/Boards", "Bearer player", http.StatusOK},
		{"POST", "/api/Boards/ProcessRepeatingBoards", "Bearer player", http.StatusForbidden},
		{"POST", "/api/Boards/ProcessRepeatingBoards", "Bearer admin", http.StatusOK},
		{"POST", "/api/Boards/StopRepeating", "", http.StatusUnauthorized},
		{"POST", "/api/Boards/StopRepeating", "Bearer player", http.StatusOK},
		{"GET", "/api/Games/GetCurrentGame", "Bearer player", http.StatusOK},
		{"POST", "/api/Games/CreateGame", "Bearer player", http.StatusForbidden},
		{"POST", "/api/Games/CreateGame", "Bearer admin", http.StatusOK},
		{"POST", "/api/Transactions/CreateTransaction", "Bearer player", http.StatusOK},
		{"POST", "/api/Transactions/ApproveTransaction", "Bearer player", http.StatusForbidden},
		{"POST", "/api/Transactions/ApproveTransaction", "Bearer admin", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequestWithContext(context.Background(), tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthRoutesRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(ok).Times(1)

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		UserHandler:        NewMockUserHandler(ctrl),
		GameHandler:        NewMockGameHandler(ctrl),
		BoardHandler:       NewMockBoardHandler(ctrl),
		TransactionHandler: NewMockTransactionHandler(ctrl),
		verifier:           pkgauth.NewMockTokenVerifier(ctrl),
		authLimiter:        appmiddleware.NewRateLimiter(0.001, 1),
	}
	router := chi.NewRouter()
	h.InitRoutes(router)

	// Rotating forwarding headers must not buy a fresh bucket.
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/Auth/Login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i+1))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i+1))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}
