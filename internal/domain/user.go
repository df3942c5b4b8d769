package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps arbitrary input to a known role, defaulting to USER.
func ParseRole(s string) Role {
	if strings.EqualFold(s, string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// User represents a registered account of the platform.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // empty for provider-only accounts
	Role         Role
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
