package users

//go:generate mockgen -source=users.go -destination=mock_users.go -package=users

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
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]domain.User, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserDTO) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
	Restore(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req dto.ChangePasswordDTO) error
	GetBalance(ctx context.Context, id uuid.UUID) (int, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetAll godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		includeDeleted	query		bool	false	"Include soft-deleted users"
//	@Success	200				{array}		dto.UserResponseDTO
//	@Failure	401				{object}	utils.Response	"Unauthorized"
//	@Failure	403				{object}	utils.Response	"Forbidden"
//	@Failure	500				{object}	utils.Response	"Internal server error"
//	@Router		/api/Users [get]
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAll(r.Context(), utils.QueryBool(r, "includeDeleted"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponses(users))
}

// GetUserByID godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"User id"
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid id"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/Users/GetUserById [get]
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithUser(w, r, id)
}

// GetCurrentUser godoc
//
//	@Summary	Get the caller's profile
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/Users/GetCurrentUser [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	h.respondWithUser(w, r, auth.UserID(r.Context()))
}

func (h *UserHandler) respondWithUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if !auth.CanAccess(r.Context(), id) {
		utils.RespondWithServiceError(w, auth.ErrForbidden)
		return
	}
	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// GetUserByEmail godoc
//
//	@Summary	Find a user by email
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		email	query		string	true	"Email"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/api/Users/GetUserByEmail [get]
func (h *UserHandler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email is required")
		return
	}
	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Description	Users may update themselves but cannot change their role
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		query		string				true	"User id"
//	@Param			request	body		dto.UpdateUserDTO	true	"New values"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Router			/api/Users/UpdateUser [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if !auth.CanAccess(r.Context(), id) {
		utils.RespondWithServiceError(w, auth.ErrForbidden)
		return
	}
	var req dto.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !auth.IsAdmin(r.Context()) {
		if req.Role == "" {
			req.Role = domain.RoleUser
		}
		if req.Role != domain.RoleUser {
			utils.RespondWithServiceError(w, auth.ErrForbidden)
			return
		}
	}
	user, err := h.userService.Update(r.Context(), id, req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser godoc
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Param		id			query	string	true	"User id"
//	@Param		permanent	query	bool	false	"Remove the row instead of soft-deleting"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/Users/DeleteUser [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if err := h.userService.Delete(r.Context(), id, utils.QueryBool(r, "permanent")); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RestoreUser godoc
//
//	@Summary	Restore a soft-deleted user
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"User id"
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Failure	409	{object}	utils.Response	"User is not deleted"
//	@Router		/api/Users/RestoreUser [post]
func (h *UserHandler) RestoreUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	user, err := h.userService.Restore(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// ChangePassword godoc
//
//	@Summary	Change own password
//	@Tags		Users
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		query	string					true	"User id"
//	@Param		request	body	dto.ChangePasswordDTO	true	"Current and new password"
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Wrong current password"
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/Users/ChangePassword [post]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if auth.UserID(r.Context()) != id {
		utils.RespondWithServiceError(w, auth.ErrForbidden)
		return
	}
	var req dto.ChangePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.userService.ChangePassword(r.Context(), id, req); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetBalanceByID godoc
//
//	@Summary	Get a user's balance
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userId	query		string	true	"User id"
//	@Success	200		{object}	dto.BalanceResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/api/Users/GetBalanceById [get]
func (h *UserHandler) GetBalanceByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "userId")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithBalance(w, r, id)
}

// GetMyBalance godoc
//
//	@Summary	Get the caller's balance
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.BalanceResponseDTO
//	@Router		/api/Users/GetMyBalance [get]
func (h *UserHandler) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	h.respondWithBalance(w, r, auth.UserID(r.Context()))
}

func (h *UserHandler) respondWithBalance(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if !auth.CanAccess(r.Context(), id) {
		utils.RespondWithServiceError(w, auth.ErrForbidden)
		return
	}
	balance, err := h.userService.GetBalance(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{UserID: id, Balance: balance})
}
