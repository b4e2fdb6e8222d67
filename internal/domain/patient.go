package domain

import (
	"time"
)

type Patient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	BirthDate time.Time `json:"birth_date"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePatientDTO struct {
	Name      string `json:"name" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

type UpdatePatientDTO struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"is_active"`
	BirthDate *string `json:"birth_date"`
}

type PatientFilter struct {
	Name     *string `json:"name"`
	CPF      *string `json:"cpf"`
	IsActive *bool   `json:"is_active"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}
