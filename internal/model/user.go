package model

import "time"

// Roles stored in the users table and carried in the JWT "role" claim.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User mirrors the 'users' table.
type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
