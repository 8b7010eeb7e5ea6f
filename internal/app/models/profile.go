package models

import "time"

// RoleType is a role held in the identity database.
type RoleType string

const (
	RoleAdmin RoleType = "admin"
)

// Profile is a student's identity record, owned by the identity database.
type Profile struct {
	ID           string    `json:"id" db:"id"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	RollNo       string    `json:"roll_no" db:"roll_no"`
	DOB          string    `json:"dob" db:"dob"`
	College      string    `json:"college" db:"college"`
	Year         string    `json:"year" db:"year"`
	Branch       string    `json:"branch" db:"branch"`
	Skills       []string  `json:"skills" db:"skills"`             // set, insertion ordered
	Achievements []string  `json:"achievements" db:"achievements"` // ordered
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// OTPCode is a pending one-time code for a phone number.
type OTPCode struct {
	Phone     string    `db:"phone"`
	CodeHash  string    `db:"code_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	Attempts  int       `db:"attempts"`
}
