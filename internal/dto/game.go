package dto

import "github.com/google/uuid"

type CreateGameDTO struct {
	Week int `json:"weekNumber" validate:"required,min=1,max=53" example:"47"`
	Year int `json:"year" validate:"required,min=1,max=9999" example:"2025"`
}

type SetWinningNumbersDTO struct {
	GameID         uuid.UUID `json:"gameId" validate:"required" example:"6c0d2f7e-3a5b-4d6c-8e9f-0a1b2c3d4e5f"`
	WinningNumbers []int     `json:"winningNumbers" validate:"required" example:"3,7,12"`
}
