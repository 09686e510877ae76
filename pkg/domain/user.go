package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system. Identity is carried in
// the bearer token subject; there is no local user record.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID
