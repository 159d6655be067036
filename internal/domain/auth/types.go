package auth

// Package auth contains domain-level types for the identity session layer.
// It is pure and free of framework/adapter concerns. The identity session is
// orthogonal to agent approval and face login, which live with the actor.

import "time"

// Role represents the application's authorization role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleGuest Role = "guest"
)

// Identity represents the authenticated principal returned by the identity
// provider. Adapters map provider-specific claims into this shape.
type Identity struct {
	Principal string // stable caller identifier (e.g. sub claim)
	FirstName string
	LastName  string
	Email     string
	Groups    []string
	ExpiresAt time.Time // absolute expiry from the provider token
}

// Session is the server-side record persisted for an authenticated caller.
// ID is an opaque session identifier.
type Session struct {
	ID        string    `json:"id"`
	Principal string    `json:"principal"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsGuest returns true if the session role is guest.
func (s Session) IsGuest() bool { return s.Role == RoleGuest }

// IsAdmin returns true if the session role is admin.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
