package models

import "time"

// Roles and account statuses. Role and status are re-checked against
// the stored user on every authenticated request.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User บัญชีผู้ใช้งานระบบประเมิน
type User struct {
	ID               string    `bson:"_id" json:"id"`
	FirstName        string    `bson:"first_name" json:"first_name"`
	LastName         string    `bson:"last_name" json:"last_name"`
	OrganizationName string    `bson:"organization_name" json:"organization_name"`
	Email            string    `bson:"email" json:"email"`
	CorporateEmail   string    `bson:"corporate_email,omitempty" json:"corporate_email,omitempty"`
	Designation      string    `bson:"designation" json:"designation"`
	ContactNumber    string    `bson:"contact_number,omitempty" json:"contact_number,omitempty"`
	PasswordHash     string    `bson:"password_hash" json:"-"`
	Role             string    `bson:"role" json:"role"`
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// RegisterRequest payload for self-registration.
type RegisterRequest struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	OrganizationName string `json:"organization_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	CorporateEmail   string `json:"corporate_email" validate:"omitempty,email"`
	Designation      string `json:"designation" validate:"required"`
	ContactNumber    string `json:"contact_number"`
	Password         string `json:"password" validate:"required,min=6"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminCreateUserRequest is the admin variant of registration, which
// may also pick the role.
type AdminCreateUserRequest struct {
	RegisterRequest
	Role string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserUpdate carries admin partial updates. Only non-nil fields are
// merged into the stored document; Password is re-hashed before merge.
type UserUpdate struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	OrganizationName *string `json:"organization_name"`
	Email            *string `json:"email" validate:"omitempty,email"`
	CorporateEmail   *string `json:"corporate_email"`
	Designation      *string `json:"designation"`
	ContactNumber    *string `json:"contact_number"`
	Password         *string `json:"password" validate:"omitempty,min=6"`
	Role             *string `json:"role" validate:"omitempty,oneof=user admin"`
	Status           *string `json:"status" validate:"omitempty,oneof=active blocked"`
}
