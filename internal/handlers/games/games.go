package games

//go:generate mockgen -source=games.go -destination=mock_games.go -package=games

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"github.com/google/uuid"
)

type Service interface {
	GetCurrent(ctx context.Context) (*domain.Game, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]domain.Game, error)
	GetByYear(ctx context.Context, year int, includeDeleted bool) ([]domain.Game, error)
	GetByWeekAndYear(ctx context.Context, week, year int) (*domain.Game, error)
	Create(ctx context.Context, req dto.CreateGameDTO) (*domain.Game, error)
	SetWinningNumbers(ctx context.Context, req dto.SetWinningNumbersDTO) (*domain.Game, error)
	Activate(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
	Restore(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	Stats(ctx context.Context) (*domain.GameStats, error)
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GetCurrentGame godoc
//
//	@Summary	Game of the current week
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Game
//	@Failure	404	{object}	utils.Response	"No game for the current week"
//	@Router		/api/Games/GetCurrentGame [get]
func (h *GameHandler) GetCurrentGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetCurrent(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if game == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No game for the current week")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

// GetAllGames godoc
//
//	@Summary	List games, newest first
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Param		includeDeleted	query	bool	false	"Include soft-deleted games"
//	@Success	200				{array}	domain.Game
//	@Router		/api/Games/GetAllGames [get]
func (h *GameHandler) GetAllGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.GetAll(r.Context(), utils.QueryBool(r, "includeDeleted"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, games)
}

// GetGameByID godoc
//
//	@Summary	Get a game
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Game id"
//	@Success	200	{object}	domain.Game
//	@Failure	404	{object}	utils.Response	"Game not found"
//	@Router		/api/Games/GetGameById [get]
func (h *GameHandler) GetGameByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	game, err := h.gameService.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

// GetGamesByYear godoc
//
//	@Summary	List the games of a year
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Param		year			query	int		true	"Year"
//	@Param		includeDeleted	query	bool	false	"Include soft-deleted games"
//	@Success	200				{array}	domain.Game
//	@Router		/api/Games/GetGamesByYear [get]
func (h *GameHandler) GetGamesByYear(w http.ResponseWriter, r *http.Request) {
	year, err := utils.QueryInt(r, "year")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	games, err := h.gameService.GetByYear(r.Context(), year, utils.QueryBool(r, "includeDeleted"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, games)
}

// GetGameByWeekAndYear godoc
//
//	@Summary	Get the game of a week
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Param		week	query		int	true	"ISO week"
//	@Param		year	query		int	true	"ISO year"
//	@Success	200		{object}	domain.Game
//	@Failure	404		{object}	utils.Response	"Game not found"
//	@Router		/api/Games/GetGameByWeekAndYear [get]
func (h *GameHandler) GetGameByWeekAndYear(w http.ResponseWriter, r *http.Request) {
	week, err := utils.QueryInt(r, "week")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	year, err := utils.QueryInt(r, "year")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	game, err := h.gameService.GetByWeekAndYear(r.Context(), week, year)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

// CreateGame godoc
//
//	@Summary		Create a game
//	@Description	The new game becomes the single active game
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateGameDTO	true	"Week and year"
//	@Success		201		{object}	domain.Game
//	@Failure		400		{object}	utils.Response	"Invalid week or duplicate game"
//	@Router			/api/Games/CreateGame [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGameDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	game, err := h.gameService.Create(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, game)
}

// SetWinningNumbers godoc
//
//	@Summary		Publish the winning numbers
//	@Description	Numbers can be set once per game
//	@Tags			Games
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.SetWinningNumbersDTO	true	"Game id and three numbers"
//	@Success		200		{object}	domain.Game
//	@Failure		400		{object}	utils.Response	"Invalid numbers"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		409		{object}	utils.Response	"Numbers already set"
//	@Router			/api/Games/SetWinningNumbers [post]
func (h *GameHandler) SetWinningNumbers(w http.ResponseWriter, r *http.Request) {
	var req dto.SetWinningNumbersDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	game, err := h.gameService.SetWinningNumbers(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

// ActivateGame godoc
//
//	@Summary	Make a game the active one
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Game id"
//	@Success	200	{object}	domain.Game
//	@Failure	404	{object}	utils.Response	"Game not found"
//	@Router		/api/Games/ActivateGame [post]
func (h *GameHandler) ActivateGame(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	game, err := h.gameService.Activate(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

// DeleteGame godoc
//
//	@Summary	Delete a game
//	@Tags		Games
//	@Security	BearerAuth
//	@Param		id			query	string	true	"Game id"
//	@Param		permanent	query	bool	false	"Remove the row instead of soft-deleting"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Game not found"
//	@Failure	409	{object}	utils.Response	"Game has boards and cannot be removed permanently"
//	@Router		/api/Games/DeleteGame [delete]
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if err := h.gameService.Delete(r.Context(), id, utils.QueryBool(r, "permanent")); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RestoreGame godoc
//
//	@Summary	Restore a soft-deleted game
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Game id"
//	@Success	200	{object}	domain.Game
//	@Failure	404	{object}	utils.Response	"Game not found"
//	@Failure	409	{object}	utils.Response	"Game is not deleted"
//	@Router		/api/Games/RestoreGame [post]
func (h *GameHandler) RestoreGame(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	game, err := h.gameService.Restore(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

// GetGameStats godoc
//
//	@Summary	Figures for the current game
//	@Tags		Games
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.GameStats
//	@Failure	404	{object}	utils.Response	"No game for the current week"
//	@Router		/api/Games/GetGameStats [get]
func (h *GameHandler) GetGameStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.gameService.Stats(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
