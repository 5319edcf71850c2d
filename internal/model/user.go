package model

type UserRole string

const (
	UserRoleStudent     UserRole = "student"
	UserRoleClinicStaff UserRole = "clinic_staff"
	UserRoleAdmin       UserRole = "admin"
)

// User is an account that owns patients, visits, contacts and activities.
// Users are never hard-deleted.
type User struct {
	Base
	Username     string  `db:"username" json:"username"`
	Email        string  `db:"email" json:"email"`
	PasswordHash string  `db:"password_hash" json:"-"`
	FullName     string  `db:"full_name" json:"full_name"`
	Role         string  `db:"role" json:"role"`
	NumericID    int     `db:"numeric_id" json:"numeric_id"`
	Phone        *string `db:"phone" json:"phone,omitempty"`
	Address      *string `db:"address" json:"address,omitempty"`
	Avatar       *string `db:"avatar" json:"avatar,omitempty"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type CheckUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest carries a partial profile update. Absent fields
// keep their current values.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Avatar   *string `json:"avatar"`
}
