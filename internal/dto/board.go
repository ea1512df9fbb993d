package dto

import "github.com/google/uuid"

type CreateBoardDTO struct {
	GameID    uuid.UUID `json:"gameId" validate:"required" example:"6c0d2f7e-3a5b-4d6c-8e9f-0a1b2c3d4e5f"`
	Numbers   []int     `json:"numbers" validate:"required" example:"1,4,7,9,15"`
	Price     int       `json:"price" validate:"min=0" example:"20"`
	Repeating bool      `json:"isRepeating" example:"false"`
}

type UpdateBoardDTO struct {
	Numbers   []int `json:"numbers" validate:"required" example:"2,5,8,11,16"`
	Price     int   `json:"price" validate:"min=0" example:"20"`
	Repeating bool  `json:"isRepeating" example:"true"`
}
