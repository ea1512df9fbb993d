package games

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var gameID = uuid.New()

func NewMock(t *testing.T) (*GameHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGameHandler(t *testing.T) {
	game := &domain.Game{ID: gameID, Week: 11, Year: 2025, Active: true}

	tests := []struct {
		name          string
		method        string
		target        string
		body          string
		handle        func(h *GameHandler) http.HandlerFunc
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Current game",
			method: http.MethodGet,
			target: "/api/Games/GetCurrentGame",
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetCurrentGame },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetCurrent(gomock.Any()).Return(game, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "No current game",
			method: http.MethodGet,
			target: "/api/Games/GetCurrentGame",
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetCurrentGame },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetCurrent(gomock.Any()).Return(nil, nil)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "No game for the current week",
		},
		{
			name:   "All games with deleted",
			method: http.MethodGet,
			target: "/api/Games/GetAllGames?includeDeleted=true",
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetAllGames },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetAll(gomock.Any(), true).Return([]domain.Game{*game}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "By id",
			method: http.MethodGet,
			target: "/api/Games/GetGameById?id=" + gameID.String(),
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetGameByID },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetByID(gomock.Any(), gameID).Return(game, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "By year",
			method: http.MethodGet,
			target: "/api/Games/GetGamesByYear?year=2025",
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetGamesByYear },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetByYear(gomock.Any(), 2025, false).Return([]domain.Game{*game}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "By year without a year",
			method:        http.MethodGet,
			target:        "/api/Games/GetGamesByYear?year=abc",
			handle:        func(h *GameHandler) http.HandlerFunc { return h.GetGamesByYear },
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "year must be an integer",
		},
		{
			name:   "By week and year",
			method: http.MethodGet,
			target: "/api/Games/GetGameByWeekAndYear?week=11&year=2025",
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetGameByWeekAndYear },
			prepareMock: func(service *MockService) {
				service.EXPECT().GetByWeekAndYear(gomock.Any(), 11, 2025).Return(nil, domain.NotFound("game not found"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "game not found",
		},
		{
			name:   "Create",
			method: http.MethodPost,
			target: "/api/Games/CreateGame",
			body:   `{"weekNumber":12,"year":2025}`,
			handle: func(h *GameHandler) http.HandlerFunc { return h.CreateGame },
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), dto.CreateGameDTO{Week: 12, Year: 2025}).Return(game, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Create with a broken body",
			method:        http.MethodPost,
			target:        "/api/Games/CreateGame",
			body:          `{"weekNumber":"twelve"}`,
			handle:        func(h *GameHandler) http.HandlerFunc { return h.CreateGame },
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:   "Winning numbers",
			method: http.MethodPost,
			target: "/api/Games/SetWinningNumbers",
			body:   `{"gameId":"` + gameID.String() + `","winningNumbers":[3,7,12]}`,
			handle: func(h *GameHandler) http.HandlerFunc { return h.SetWinningNumbers },
			prepareMock: func(service *MockService) {
				service.EXPECT().SetWinningNumbers(gomock.Any(), dto.SetWinningNumbersDTO{GameID: gameID, WinningNumbers: []int{3, 7, 12}}).Return(game, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Winning numbers twice",
			method: http.MethodPost,
			target: "/api/Games/SetWinningNumbers",
			body:   `{"gameId":"` + gameID.String() + `","winningNumbers":[3,7,12]}`,
			handle: func(h *GameHandler) http.HandlerFunc { return h.SetWinningNumbers },
			prepareMock: func(service *MockService) {
				service.EXPECT().SetWinningNumbers(gomock.Any(), gomock.Any()).Return(nil, domain.NewError(domain.ErrInvalidOperation, "winning numbers have already been set for this game"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "winning numbers have already been set for this game",
		},
		{
			name:   "Activate",
			method: http.MethodPost,
			target: "/api/Games/ActivateGame?id=" + gameID.String(),
			handle: func(h *GameHandler) http.HandlerFunc { return h.ActivateGame },
			prepareMock: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), gameID).Return(game, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Delete",
			method: http.MethodDelete,
			target: "/api/Games/DeleteGame?id=" + gameID.String(),
			handle: func(h *GameHandler) http.HandlerFunc { return h.DeleteGame },
			prepareMock: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), gameID, false).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Restore",
			method: http.MethodPost,
			target: "/api/Games/RestoreGame?id=" + gameID.String(),
			handle: func(h *GameHandler) http.HandlerFunc { return h.RestoreGame },
			prepareMock: func(service *MockService) {
				service.EXPECT().Restore(gomock.Any(), gameID).Return(game, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Stats",
			method: http.MethodGet,
			target: "/api/Games/GetGameStats",
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetGameStats },
			prepareMock: func(service *MockService) {
				service.EXPECT().Stats(gomock.Any()).Return(&domain.GameStats{GameID: gameID, TotalBoards: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Stats failure",
			method: http.MethodGet,
			target: "/api/Games/GetGameStats",
			handle: func(h *GameHandler) http.HandlerFunc { return h.GetGameStats },
			prepareMock: func(service *MockService) {
				service.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			tt.handle(handler)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
