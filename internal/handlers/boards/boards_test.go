package boards

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/pkg/auth"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var (
	userID  = uuid.New()
	gameID  = uuid.New()
	boardID = uuid.New()
	player  = &auth.Claims{UserID: userID, Role: domain.RoleUser}
)

func NewMock(t *testing.T) (*BoardHandler, *MockService, *MockRebuyer) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	rebuyer := NewMockRebuyer(ctrl)
	handler := New(service, rebuyer)
	defer ctrl.Finish()
	return handler, service, rebuyer
}

func TestBoardHandler(t *testing.T) {
	board := &domain.Board{ID: boardID, UserID: userID, GameID: &gameID, Numbers: []int{1, 2, 3, 4, 5}, Price: 20}

	tests := []struct {
		name          string
		method        string
		target        string
		body          string
		handle        func(h *BoardHandler) http.HandlerFunc
		prepareMock   func(service *MockService, rebuyer *MockRebuyer)
		expectedCode  int
		expectedError string
	}{
		{
			name:   "My boards",
			method: http.MethodGet,
			target: "/api/Boards",
			handle: func(h *BoardHandler) http.HandlerFunc { return h.GetMyBoards },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().GetByUser(gomock.Any(), userID, false).Return([]domain.Board{*board}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Purchase",
			method: http.MethodPost,
			target: "/api/Boards",
			body:   `{"gameId":"` + gameID.String() + `","numbers":[1,2,3,4,5],"price":20}`,
			handle: func(h *BoardHandler) http.HandlerFunc { return h.CreateBoard },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().Create(gomock.Any(), userID, dto.CreateBoardDTO{GameID: gameID, Numbers: []int{1, 2, 3, 4, 5}, Price: 20}).Return(board, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Purchase with insufficient balance",
			method: http.MethodPost,
			target: "/api/Boards",
			body:   `{"gameId":"` + gameID.String() + `","numbers":[1,2,3,4,5],"price":20}`,
			handle: func(h *BoardHandler) http.HandlerFunc { return h.CreateBoard },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().Create(gomock.Any(), userID, gomock.Any()).Return(nil, domain.Validation("insufficient balance"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "insufficient balance",
		},
		{
			name:          "Purchase with a broken body",
			method:        http.MethodPost,
			target:        "/api/Boards",
			body:          `{"numbers":`,
			handle:        func(h *BoardHandler) http.HandlerFunc { return h.CreateBoard },
			prepareMock:   func(*MockService, *MockRebuyer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:   "Get board",
			method: http.MethodGet,
			target: "/api/Boards/GetBoard?id=" + boardID.String(),
			handle: func(h *BoardHandler) http.HandlerFunc { return h.GetBoard },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().GetByID(gomock.Any(), boardID, userID).Return(board, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Get board with a bad id",
			method:        http.MethodGet,
			target:        "/api/Boards/GetBoard?id=nope",
			handle:        func(h *BoardHandler) http.HandlerFunc { return h.GetBoard },
			prepareMock:   func(*MockService, *MockRebuyer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "id must be a valid UUID",
		},
		{
			name:   "Update a played board",
			method: http.MethodPut,
			target: "/api/Boards/UpdateBoard?id=" + boardID.String(),
			body:   `{"numbers":[2,5,8,11,16],"price":20,"isRepeating":true}`,
			handle: func(h *BoardHandler) http.HandlerFunc { return h.UpdateBoard },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().Update(gomock.Any(), boardID, userID, dto.UpdateBoardDTO{Numbers: []int{2, 5, 8, 11, 16}, Price: 20, Repeating: true}).
					Return(nil, domain.NewError(domain.ErrInvalidOperation, "board has already been played"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "board has already been played",
		},
		{
			name:   "Delete",
			method: http.MethodDelete,
			target: "/api/Boards/DeleteBoard?id=" + boardID.String(),
			handle: func(h *BoardHandler) http.HandlerFunc { return h.DeleteBoard },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().Delete(gomock.Any(), boardID, userID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Delete someone else's board",
			method: http.MethodDelete,
			target: "/api/Boards/DeleteBoard?id=" + boardID.String(),
			handle: func(h *BoardHandler) http.HandlerFunc { return h.DeleteBoard },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().Delete(gomock.Any(), boardID, userID).Return(domain.NotFound("board not found"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "board not found",
		},
		{
			name:   "Stop repeating a played board",
			method: http.MethodPost,
			target: "/api/Boards/StopRepeating?id=" + boardID.String(),
			handle: func(h *BoardHandler) http.HandlerFunc { return h.StopRepeating },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().StopRepeating(gomock.Any(), boardID, userID).Return(board, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Stop repeating someone else's board",
			method: http.MethodPost,
			target: "/api/Boards/StopRepeating?id=" + boardID.String(),
			handle: func(h *BoardHandler) http.HandlerFunc { return h.StopRepeating },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().StopRepeating(gomock.Any(), boardID, userID).Return(nil, domain.NotFound("board not found"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "board not found",
		},
		{
			name:          "Stop repeating without an id",
			method:        http.MethodPost,
			target:        "/api/Boards/StopRepeating",
			handle:        func(h *BoardHandler) http.HandlerFunc { return h.StopRepeating },
			prepareMock:   func(*MockService, *MockRebuyer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "id is required",
		},
		{
			name:   "Active repeating",
			method: http.MethodGet,
			target: "/api/Boards/GetActiveRepeatingBoards",
			handle: func(h *BoardHandler) http.HandlerFunc { return h.GetActiveRepeatingBoards },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().GetActiveRepeating(gomock.Any()).Return([]domain.Board{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Boards of a week",
			method: http.MethodGet,
			target: "/api/Boards/GetBoardsForCurrentGameWeek?year=2025&week=11",
			handle: func(h *BoardHandler) http.HandlerFunc { return h.GetBoardsForCurrentGameWeek },
			prepareMock: func(service *MockService, _ *MockRebuyer) {
				service.EXPECT().GetForCurrentGameWeek(gomock.Any(), 2025, 11).Return([]domain.Board{*board}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Boards of a week without a week",
			method:        http.MethodGet,
			target:        "/api/Boards/GetBoardsForCurrentGameWeek?year=2025",
			handle:        func(h *BoardHandler) http.HandlerFunc { return h.GetBoardsForCurrentGameWeek },
			prepareMock:   func(*MockService, *MockRebuyer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "week is required",
		},
		{
			name:   "Process repeating boards",
			method: http.MethodPost,
			target: "/api/Boards/ProcessRepeatingBoards",
			handle: func(h *BoardHandler) http.HandlerFunc { return h.ProcessRepeatingBoards },
			prepareMock: func(_ *MockService, rebuyer *MockRebuyer) {
				rebuyer.EXPECT().Process(gomock.Any()).Return(&domain.RebuyReport{GameID: gameID, Candidates: 2, Purchased: 1, Skipped: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Process repeating boards failure",
			method: http.MethodPost,
			target: "/api/Boards/ProcessRepeatingBoards",
			handle: func(h *BoardHandler) http.HandlerFunc { return h.ProcessRepeatingBoards },
			prepareMock: func(_ *MockService, rebuyer *MockRebuyer) {
				rebuyer.EXPECT().Process(gomock.Any()).Return(nil, errors.New("pool closed"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, rebuyer := NewMock(t)
			tt.prepareMock(service, rebuyer)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), auth.ClaimsKey, player))
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

func TestProcessRepeatingBoardsReport(t *testing.T) {
	handler, _, rebuyer := NewMock(t)
	rebuyer.EXPECT().Process(gomock.Any()).Return(&domain.RebuyReport{GameID: gameID, Candidates: 3, Purchased: 2, Failed: 1}, nil)

	rr := httptest.NewRecorder()
	handler.ProcessRepeatingBoards(rr, httptest.NewRequest(http.MethodPost, "/api/Boards/ProcessRepeatingBoards", nil))

	var report domain.RebuyReport
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&report))
	assert.Equal(t, 2, report.Purchased)
	assert.Equal(t, 1, report.Failed)
}
