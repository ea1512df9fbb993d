package auth

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/deadpigeons/internal/dto"
	pkgauth "github.com/GlebRadaev/deadpigeons/pkg/auth"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, req dto.RegisterRequestDTO) (string, error)
	Login(ctx context.Context, req dto.LoginRequestDTO) (string, error)
	CreateFirstAdminIfNoneExists(ctx context.Context, req dto.SetupAdminRequestDTO) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a player account and receive a JWT
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.JWTResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or email already in use"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/Auth/Register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.Register(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	respondWithToken(w, token)
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a JWT
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.JWTResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/Auth/Login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	respondWithToken(w, token)
}

// SetupFirstAdmin godoc
//
//	@Summary		Create the first administrator
//	@Description	Only allowed while no user exists
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetupAdminRequestDTO	true	"Administrator details"
//	@Success		200		{object}	dto.JWTResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or setup already completed"
//	@Failure		429		{object}	utils.Response	"Too many requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/Auth/SetupFirstAdmin [post]
func (h *AuthHandler) SetupFirstAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.SetupAdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, err := h.authService.CreateFirstAdminIfNoneExists(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	respondWithToken(w, token)
}

// WhoAmI godoc
//
//	@Summary	Current caller
//	@Tags		Auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.WhoAmIResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/Auth/WhoAmI [get]
func (h *AuthHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	claims, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WhoAmIResponseDTO{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	})
}

func respondWithToken(w http.ResponseWriter, token string) {
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.JWTResponseDTO{Token: token})
}
