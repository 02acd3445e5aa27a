package models

// Identity is the resolved voter identity for a request: either an
// authenticated user id or a stable per-browser anonymous token. Both carry
// equal weight for vote deduplication.
type Identity struct {
	UserID      *uint
	AnonymousID string
}

// AuthenticatedIdentity wraps a user id.
func AuthenticatedIdentity(userID uint) Identity {
	return Identity{UserID: &userID}
}

// AnonymousIdentity wraps a session-scoped anonymous token.
func AnonymousIdentity(token string) Identity {
	return Identity{AnonymousID: token}
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != nil
}

// IsZero reports whether no identity could be resolved at all. A zero
// identity can never have voted and must not be recorded.
func (i Identity) IsZero() bool {
	return i.UserID == nil && i.AnonymousID == ""
}
