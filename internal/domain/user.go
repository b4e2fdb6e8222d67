package domain

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin        UserRole = "admin"
	UserRoleProfessional UserRole = "professional"
	UserRoleReceptionist UserRole = "receptionist"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Specialty    string    `json:"specialty,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateUserDTO struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Phone     string   `json:"phone"`
	Password  string   `json:"password" binding:"required,min=6"`
	Role      UserRole `json:"role" binding:"required,oneof=admin professional receptionist"`
	Specialty string   `json:"specialty"`
}

type UpdateUserDTO struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
	IsActive  *bool   `json:"is_active"`
}

type PasswordUpdateDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UserFilter struct {
	Role     *UserRole `json:"role"`
	IsActive *bool     `json:"is_active"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
