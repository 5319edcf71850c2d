package model

import "github.com/google/uuid"

// Contact is a personal emergency contact owned by a user.
type Contact struct {
	Base
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Name         string    `db:"name" json:"name"`
	Phone        string    `db:"phone" json:"phone"`
	Email        string    `db:"email" json:"email"`
	Relationship *string   `db:"relationship" json:"relationship,omitempty"`
}

type ContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required,phoneprefix"`
	Email        string `json:"email" binding:"required,email"`
	Relationship string `json:"relationship"`
}

// ClinicContact is a clinic department contact with an icon and link.
type ClinicContact struct {
	Base
	UserID uuid.UUID `db:"user_id" json:"user_id"`
	Name   string    `db:"name" json:"name"`
	Icon   string    `db:"icon" json:"icon"`
	Link   string    `db:"link" json:"link"`
	Notes  *string   `db:"notes" json:"notes,omitempty"`
}

type ClinicContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon" binding:"required"`
	Link  string `json:"link" binding:"required"`
	Notes string `json:"notes"`
}
