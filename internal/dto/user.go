package dto

import (
	"time"

	"github.com/GlebRadaev/deadpigeons/internal/domain"
	"github.com/google/uuid"
)

type UpdateUserDTO struct {
	FirstName string `json:"firstName" validate:"required,max=100" example:"Ada"`
	LastName  string `json:"lastName" validate:"required,max=100" example:"Lovelace"`
	Email     string `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Role      string `json:"role" validate:"required,oneof=User Admin" example:"User"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" validate:"required,min=6" example:"secret456"`
}

type UserResponseDTO struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Deleted   bool       `json:"isDeleted"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type BalanceResponseDTO struct {
	UserID  uuid.UUID `json:"userId"`
	Balance int       `json:"balance" example:"140"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Deleted:   u.Deleted,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []domain.User) []UserResponseDTO {
	out := make([]UserResponseDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
