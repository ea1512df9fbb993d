package transactions

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/GlebRadaev/deadpigeons/internal/dto"
	"github.com/GlebRadaev/deadpigeons/pkg/auth"
	"github.com/GlebRadaev/deadpigeons/pkg/utils"
	"github.com/google/uuid"
)

var ErrDepositAmount = domain.Validation("amount must be positive")

type Service interface {
	Create(ctx context.Context, req dto.CreateTransactionDTO) (*domain.Transaction, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	GetAll(ctx context.Context, includeDeleted bool) ([]domain.Transaction, error)
	GetByUser(ctx context.Context, userID uuid.UUID, includeDeleted bool) ([]domain.Transaction, error)
	GetPending(ctx context.Context) ([]domain.Transaction, error)
	GetPendingCount(ctx context.Context) (int, error)
	GetTotalApprovedAmountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID, permanent bool) error
	Restore(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction godoc
//
//	@Summary		Record a transaction
//	@Description	Players can only file a deposit for themselves. Admins may record any amount for any user
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateTransactionDTO	true	"Deposit request"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request or duplicate reference"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Router			/api/Transactions/CreateTransaction [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !auth.IsAdmin(r.Context()) {
		self := auth.UserID(r.Context())
		if req.UserID != nil && *req.UserID != self {
			utils.RespondWithServiceError(w, auth.ErrForbidden)
			return
		}
		if req.Amount <= 0 {
			utils.RespondWithServiceError(w, ErrDepositAmount)
			return
		}
		req.UserID = &self
		req.BoardID = nil
	}

	tx, err := h.transactionService.Create(r.Context(), req)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionResponse(tx))
}

// GetAllTransactions godoc
//
//	@Summary	List transactions, newest first
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		includeDeleted	query	bool	false	"Include soft-deleted transactions"
//	@Success	200				{array}	dto.TransactionResponseDTO
//	@Failure	403				{object}	utils.Response	"Forbidden"
//	@Router		/api/Transactions/GetAllTransactions [get]
func (h *TransactionHandler) GetAllTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.transactionService.GetAll(r.Context(), utils.QueryBool(r, "includeDeleted"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponses(txs))
}

// GetPendingTransactions godoc
//
//	@Summary	Transactions awaiting a decision
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.TransactionResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Router		/api/Transactions/GetPendingTransactions [get]
func (h *TransactionHandler) GetPendingTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.transactionService.GetPending(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponses(txs))
}

// GetPendingTransactionsCount godoc
//
//	@Summary	Number of pending transactions
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.CountResponseDTO
//	@Router		/api/Transactions/GetPendingTransactionsCount [get]
func (h *TransactionHandler) GetPendingTransactionsCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.transactionService.GetPendingCount(r.Context())
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CountResponseDTO{Count: count})
}

// GetTransactionByMobilepayReference godoc
//
//	@Summary	Find a transaction by its MobilePay reference
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		reference	query		string	true	"MobilePay reference"
//	@Success	200			{object}	dto.TransactionResponseDTO
//	@Failure	404			{object}	utils.Response	"Transaction not found"
//	@Router		/api/Transactions/GetTransactionByMobilepayReference [get]
func (h *TransactionHandler) GetTransactionByMobilepayReference(w http.ResponseWriter, r *http.Request) {
	reference := strings.TrimSpace(r.URL.Query().Get("reference"))
	if reference == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "reference is required")
		return
	}
	tx, err := h.transactionService.GetByReference(r.Context(), reference)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// GetTransactionByID godoc
//
//	@Summary	Get a transaction
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Transaction id"
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	403	{object}	utils.Response	"Forbidden"
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/api/Transactions/GetTransactionById [get]
func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	tx, err := h.transactionService.GetByID(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if !auth.IsAdmin(r.Context()) && (tx.UserID == nil || !auth.CanAccess(r.Context(), *tx.UserID)) {
		utils.RespondWithServiceError(w, auth.ErrForbidden)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// GetTransactionsByUserID godoc
//
//	@Summary	Transactions of a user
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userId			query	string	true	"User id"
//	@Param		includeDeleted	query	bool	false	"Include soft-deleted transactions (admin only)"
//	@Success	200				{array}	dto.TransactionResponseDTO
//	@Failure	403				{object}	utils.Response	"Forbidden"
//	@Router		/api/Transactions/GetTransactionsByUserId [get]
func (h *TransactionHandler) GetTransactionsByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.QueryUUID(r, "userId")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if !auth.CanAccess(r.Context(), userID) {
		utils.RespondWithServiceError(w, auth.ErrForbidden)
		return
	}
	includeDeleted := utils.QueryBool(r, "includeDeleted") && auth.IsAdmin(r.Context())
	txs, err := h.transactionService.GetByUser(r.Context(), userID, includeDeleted)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponses(txs))
}

// GetUserBalance godoc
//
//	@Summary	Sum of a user's approved transactions
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userId	query		string	true	"User id"
//	@Success	200		{object}	dto.BalanceResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Router		/api/Transactions/GetUserBalance [get]
func (h *TransactionHandler) GetUserBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.QueryUUID(r, "userId")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if !auth.CanAccess(r.Context(), userID) {
		utils.RespondWithServiceError(w, auth.ErrForbidden)
		return
	}
	balance, err := h.transactionService.GetTotalApprovedAmountByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{UserID: userID, Balance: balance})
}

// ApproveTransaction godoc
//
//	@Summary	Approve a pending transaction
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Transaction id"
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	409	{object}	utils.Response	"Transaction is not pending"
//	@Router		/api/Transactions/ApproveTransaction [post]
func (h *TransactionHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transactionService.Approve)
}

// RejectTransaction godoc
//
//	@Summary	Reject a pending transaction
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Transaction id"
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	409	{object}	utils.Response	"Transaction is not pending"
//	@Router		/api/Transactions/RejectTransaction [post]
func (h *TransactionHandler) RejectTransaction(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transactionService.Reject)
}

// RestoreTransaction godoc
//
//	@Summary	Restore a soft-deleted transaction
//	@Tags		Transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	query		string	true	"Transaction id"
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Failure	409	{object}	utils.Response	"Transaction is not deleted"
//	@Router		/api/Transactions/RestoreTransaction [post]
func (h *TransactionHandler) RestoreTransaction(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transactionService.Restore)
}

func (h *TransactionHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Transaction, error)) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	tx, err := fn(r.Context(), id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

// DeleteTransaction godoc
//
//	@Summary	Delete a transaction
//	@Tags		Transactions
//	@Security	BearerAuth
//	@Param		id			query	string	true	"Transaction id"
//	@Param		permanent	query	bool	false	"Remove the row instead of soft-deleting"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Transaction not found"
//	@Router		/api/Transactions/DeleteTransaction [delete]
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := utils.QueryUUID(r, "id")
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	if err := h.transactionService.Delete(r.Context(), id, utils.QueryBool(r, "permanent")); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
