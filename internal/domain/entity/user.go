package entity

import "time"

// User is an application login. A user belongs to exactly one company; the
// company selected at login is carried in the JWT.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
