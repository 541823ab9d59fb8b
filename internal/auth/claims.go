package auth

import (
	"time"

	"atn-virtual/crewcenter/internal/constants"
)

// UserClaims is what handlers know about the caller
type UserClaims interface {
	UserID() string
	Role() constants.PilotRole
	Source() string
	IsStaff() bool
}

// SessionClaims come from a validated login token
type SessionClaims struct {
	Username  string
	RoleValue constants.PilotRole
	TokenID   string
	ExpiresAt time.Time
}

func (c *SessionClaims) UserID() string            { return c.Username }
func (c *SessionClaims) Role() constants.PilotRole { return c.RoleValue }
func (c *SessionClaims) Source() string            { return "JWT" }
func (c *SessionClaims) IsStaff() bool             { return c.RoleValue == constants.RoleStaff }
