package dto

import "github.com/google/uuid"

type RegisterRequestDTO struct {
	FirstName string `json:"firstName" validate:"required,max=100" example:"Ada"`
	LastName  string `json:"lastName" validate:"required,max=100" example:"Lovelace"`
	Email     string `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Password  string `json:"password" validate:"required,min=6" example:"secret123"`
}

type SetupAdminRequestDTO struct {
	FirstName string `json:"firstName" validate:"required,max=100" example:"Jerne"`
	LastName  string `json:"lastName" validate:"required,max=100" example:"IF"`
	Email     string `json:"email" validate:"required,email,max=255" example:"admin@jerneif.dk"`
	Password  string `json:"password" validate:"required,min=8" example:"supersecret"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type JWTResponseDTO struct {
	Token string `json:"jwt" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

type WhoAmIResponseDTO struct {
	ID    uuid.UUID `json:"id" example:"6c0d2f7e-3a5b-4d6c-8e9f-0a1b2c3d4e5f"`
	Email string    `json:"email" example:"ada@example.com"`
	Name  string    `json:"name" example:"Ada Lovelace"`
	Role  string    `json:"role" example:"User"`
}
