package boards

//go:generate mockgen -source=boards.go -destination=mock_boards.go -package=boards

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/pkg/auth"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateBoardDTO) (*domain.Board, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Board, error)
	GetByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Board, error)
	Update(ctx context.Context, id, userID uuid.UUID, req dto.UpdateBoardDTO) (*domain.Board, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	StopRepeating(ctx context.Context, id, userID uuid.UUID) (*domain.Board, error)
	GetActiveRepeating(ctx context.Context) ([]domain.Board, error)
	GetForCurrentGameWeek(ctx context.Context, year, week int) ([]domain.Board, error)
}

type Rebuyer interface {
	Process(ctx context.Context) (*domain.RebuyReport, error)
}

type BoardHandler struct {
	boardService Service
	rebuyer      Rebuyer
}

func New(boardService Service, rebuyer Rebuyer) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		rebuyer:      rebuyer,
	}
}

// GetMyBoards godoc
//
//	@Summary	Boards of the caller
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		includeDeleted	query	bool	false	"Include deleted boards"
//	@Success	200				{array}	domain.Board
//	@Failure	401				{object}	utils.Response	"Unauthorized"
//	@Router		/api/Boards [get]
func (h *BoardHandler) GetMyBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boardService.GetByUser(r.Context(), auth.UserID(r.Context()), utils.QueryBool(r, "includeDeleted"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boards)
}

// CreateBoard godoc
//
//	@Summary		Buy a board
//	@Description	Debits the board price from the caller's balance
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateBoardDTO	true	"Game, numbers and price"
//	@Success		201		{object}	domain.Board
//	@Failure		400		{object}	utils.Response	"Invalid board or insufficient balance"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Router			/api/Boards [post]
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoardDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	board, err := h.boardService.Create(r.Context(), auth.UserID(r.Context()), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, board)
}

// GetBoard godoc
//
//	@Summary	Get one of the caller's boards
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Board id"
//	@Success	200	{object}	domain.Board
//	@Failure	404	{object}	utils.Response	"Board not found"
//	@Router		/api/Boards/GetBoard [get]
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	board, err := h.boardService.GetByID(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, board)
}

// UpdateBoard godoc
//
//	@Summary		Change an unplayed board
//	@Description	Price is re-derived from the number count
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		query		string				true	"Board id"
//	@Param			request	body		dto.UpdateBoardDTO	true	"Numbers, price and repeat flag"
//	@Success		200		{object}	domain.Board
//	@Failure		404		{object}	utils.Response	"Board not found"
//	@Failure		409		{object}	utils.Response	"Board already played"
//	@Router			/api/Boards/UpdateBoard [put]
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	var req dto.UpdateBoardDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	board, err := h.boardService.Update(r.Context(), id, auth.UserID(r.Context()), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, board)
}

// StopRepeating godoc
//
//	@Summary		Stop buying a board every week
//	@Description	Allowed on played boards; the board itself is unchanged
//	@Tags			Boards
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	query		string	true	"Board id"
//	@Success		200	{object}	domain.Board
//	@Failure		404	{object}	utils.Response	"Board not found"
//	@Router			/api/Boards/StopRepeating [post]
func (h *BoardHandler) StopRepeating(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	board, err := h.boardService.StopRepeating(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, board)
}

// DeleteBoard godoc
//
//	@Summary	Delete an unplayed board
//	@Tags		Boards
//	@Security	BearerAuth
//	@Param		id	query	string	true	"Board id"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Board not found"
//	@Failure	409	{object}	utils.Response	"Board already played"
//	@Router		/api/Boards/DeleteBoard [delete]
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if err := h.boardService.Delete(r.Context(), id, auth.UserID(r.Context())); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetActiveRepeatingBoards godoc
//
//	@Summary	Repeating boards that are still live
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Board
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/Boards/GetActiveRepeatingBoards [get]
func (h *BoardHandler) GetActiveRepeatingBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boardService.GetActiveRepeating(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boards)
}

// GetBoardsForCurrentGameWeek godoc
//
//	@Summary	Boards played in the game of a week
//	@Tags		Boards
//	@Produce	json
//	@Security	BearerAuth
//	@Param		year	query		int	true	"ISO year"
//	@Param		week	query		int	true	"ISO week"
//	@Success	200		{array}		domain.Board
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/Boards/GetBoardsForCurrentGameWeek [get]
func (h *BoardHandler) GetBoardsForCurrentGameWeek(w http.ResponseWriter, r *http.Request) {
	year, err := utils.QueryInt(r, "year")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	week, err := utils.QueryInt(r, "week")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	boards, err := h.boardService.GetForCurrentGameWeek(r.Context(), year, week)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boards)
}

// ProcessRepeatingBoards godoc
//
//	@Summary		Buy repeating boards into the active game
//	@Description	Runs the same pass as the scheduled rebuy job
//	@Tags			Boards
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.RebuyReport
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Router			/api/Boards/ProcessRepeatingBoards [post]
func (h *BoardHandler) ProcessRepeatingBoards(w http.ResponseWriter, r *http.Request) {
	report, err := h.rebuyer.Process(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}
