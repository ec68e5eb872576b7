package identity

// Role discriminates the per-request principal attached by the transport layer.
type Role int

const (
	Anonymous Role = iota
	User
	Admin
)

// Principal is the identity resolved for a single request. The zero value is
// an anonymous principal.
type Principal struct {
	Role Role
	ID   string // user id; empty for Anonymous
}

// Authenticated reports whether any identity is present.
func (p Principal) Authenticated() bool {
	return p.Role == User || p.Role == Admin
}

// IsAdmin reports whether the principal holds the admin capability.
func (p Principal) IsAdmin() bool {
	return p.Role == Admin
}

// Owns reports whether the principal is the owner of a resource.
func (p Principal) Owns(ownerID string) bool {
	return p.Authenticated() && p.ID == ownerID
}

// CanAccess is the owner-or-admin capability predicate used for reads.
func (p Principal) CanAccess(ownerID string) bool {
	return p.Owns(ownerID) || p.IsAdmin()
}
