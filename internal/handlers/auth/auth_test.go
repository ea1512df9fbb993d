package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	pkgauth "github.com/GlebRadaev/deadpigeons/pkg/auth"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

type tokenCase struct {
	name          string
	body          string
	prepareMock   func(service *MockService)
	expectedCode  int
	expectedToken string
	expectedError string
}

func runTokenCases(t *testing.T, target string, cases []tokenCase, call func(h *AuthHandler) http.HandlerFunc) {
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			call(handler)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.JWTResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedToken, resp.Token)
			assert.Equal(t, "Bearer "+tt.expectedToken, rr.Header().Get("Authorization"))
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	runTokenCases(t, "/api/Auth/Register", []tokenCase{
		{
			name: "Successful registration",
			body: `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), dto.RegisterRequestDTO{
					FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret123",
				}).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "some-jwt-token",
		},
		{
			name: "Email already in use",
			body: `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", domain.Validation("email is already in use"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "email is already in use",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Unexpected error is hidden",
			body: `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"secret123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}, func(h *AuthHandler) http.HandlerFunc { return h.Register })
}

func TestLoginHandler(t *testing.T) {
	runTokenCases(t, "/api/Auth/Login", []tokenCase{
		{
			name: "Successful login",
			body: `{"email":"ada@example.com","password":"secret123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Login(gomock.Any(), dto.LoginRequestDTO{Email: "ada@example.com", Password: "secret123"}).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"ada@example.com","password":"wrong"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", domain.NewError(domain.ErrAuthentication, "invalid email or password"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid email or password",
		},
		{
			name:          "Invalid request body",
			body:          `[]`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}, func(h *AuthHandler) http.HandlerFunc { return h.Login })
}

func TestSetupFirstAdminHandler(t *testing.T) {
	runTokenCases(t, "/api/Auth/SetupFirstAdmin", []tokenCase{
		{
			name: "Creates the first admin",
			body: `{"firstName":"Jerne","lastName":"IF","email":"admin@jerneif.dk","password":"supersecret"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateFirstAdminIfNoneExists(gomock.Any(), gomock.Any()).Return("admin-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "admin-token",
		},
		{
			name: "Setup already completed",
			body: `{"firstName":"Jerne","lastName":"IF","email":"admin@jerneif.dk","password":"supersecret"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateFirstAdminIfNoneExists(gomock.Any(), gomock.Any()).Return("", domain.Validation("an administrator has already been set up"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "an administrator has already been set up",
		},
	}, func(h *AuthHandler) http.HandlerFunc { return h.SetupFirstAdmin })
}

func TestWhoAmIHandler(t *testing.T) {
	handler, _ := NewMock(t)
	id := uuid.New()

	t.Run("Returns the caller", func(t *testing.T) {
		claims := &pkgauth.Claims{UserID: id, Role: domain.RoleUser, Email: "ada@example.com", Name: "Ada Lovelace"}
		req := httptest.NewRequest(http.MethodGet, "/api/Auth/WhoAmI", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.ClaimsKey, claims))
		rr := httptest.NewRecorder()

		handler.WhoAmI(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.WhoAmIResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, dto.WhoAmIResponseDTO{ID: id, Email: "ada@example.com", Name: "Ada Lovelace", Role: domain.RoleUser}, resp)
	})

	t.Run("No claims", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.WhoAmI(rr, httptest.NewRequest(http.MethodGet, "/api/Auth/WhoAmI", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
