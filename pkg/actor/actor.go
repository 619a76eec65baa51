// Package actor identifies the user performing an action. It is the carrier
// for the privileged-role check on corrections and payments, and supplies the
// operator name stamped into audit entries and payment records.
package actor

import (
	"context"
	"fmt"
)

// Roles known to the workforce service. The privileged check is a binary
// admin-or-manager comparison, not a permission matrix.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Actor represents the entity performing an action in the system.
type Actor struct {
	// ID is the unique identifier of the actor (user ID)
	ID string `json:"id"`

	// Name is the actor's display name, stamped into audit trails
	Name string `json:"name"`

	// Role is the actor's role
	Role string `json:"role"`
}

// IsPrivileged reports whether the actor may run manager-only operations
// (punch corrections, payment recording).
func (a *Actor) IsPrivileged() bool {
	if a == nil {
		return false
	}
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// String returns a string representation of the actor for logging
func (a *Actor) String() string {
	if a == nil {
		return "system"
	}
	return fmt.Sprintf("%s (%s)", a.Name, a.Role)
}

// contextKey is the type for context keys to avoid collisions
type contextKey string

const actorContextKey contextKey = "actor"

// FromContext retrieves the Actor from the context.
// Returns nil if no actor is present (e.g., system operations).
func FromContext(ctx context.Context) *Actor {
	if ctx == nil {
		return nil
	}
	actor, ok := ctx.Value(actorContextKey).(*Actor)
	if !ok {
		return nil
	}
	return actor
}

// WithActor returns a new context with the Actor attached.
func WithActor(ctx context.Context, a *Actor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorContextKey, a)
}

// SystemActor returns an Actor representing the system itself.
// Use this for background jobs and system-initiated operations.
func SystemActor() *Actor {
	return &Actor{
		ID:   "00000000-0000-0000-0000-000000000000",
		Name: "System",
		Role: RoleAdmin,
	}
}

// IsSystem returns true if the actor represents the system.
func (a *Actor) IsSystem() bool {
	if a == nil {
		return true
	}
	return a.ID == "00000000-0000-0000-0000-000000000000"
}
