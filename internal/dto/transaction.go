package dto

import (
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/google/uuid"
)

type CreateTransactionDTO struct {
	UserID             *uuid.UUID `json:"userId" example:"6c0d2f7e-3a5b-4d6c-8e9f-0a1b2c3d4e5f"`
	Amount             int        `json:"amount" validate:"ne=0" example:"200"`
	MobilepayReference string     `json:"mobilepayReference" validate:"required,max=64" example:"MP-123456"`
	BoardID            *uuid.UUID `json:"boardId,omitempty"`
}

type TransactionResponseDTO struct {
	ID                 uuid.UUID                `json:"id"`
	UserID             *uuid.UUID               `json:"userId"`
	Amount             int                      `json:"amount" example:"200"`
	MobilepayReference string                   `json:"mobilepayReference" example:"MP-123456"`
	Status             domain.TransactionStatus `json:"status" example:"pending"`
	Approved           bool                     `json:"approved" example:"false"`
	BoardID            *uuid.UUID               `json:"boardId,omitempty"`
	Deleted            bool                     `json:"isDeleted"`
	CreatedAt          time.Time                `json:"createdAt"`
}

type CountResponseDTO struct {
	Count int `json:"count" example:"3"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:                 t.ID,
		UserID:             t.UserID,
		Amount:             t.Amount,
		MobilepayReference: t.MobilepayReference,
		Status:             t.Status,
		Approved:           t.Approved(),
		BoardID:            t.BoardID,
		Deleted:            t.Deleted,
		CreatedAt:          t.CreatedAt,
	}
}

func NewTransactionResponses(txs []domain.Transaction) []TransactionResponseDTO {
	out := make([]TransactionResponseDTO, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
