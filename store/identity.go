package store

import "github.com/google/uuid"

// Identity is an opaque, process-unique handle for a token. It is stable
// for the token's lifetime, assigned once at creation (Seed or a staged
// Insert), and never reused even after the token is deleted.
type Identity uuid.UUID

// NewIdentity allocates a fresh, never-before-seen identity.
func NewIdentity() Identity {
	return Identity(uuid.New())
}

// String renders the identity in canonical UUID form.
func (id Identity) String() string {
	return uuid.UUID(id).String()
}
