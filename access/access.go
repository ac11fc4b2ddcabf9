// Package access decides whether a principal may act on a resource.
// Reads are open to everyone; writes require the caller to own the resource
// or hold staff privileges. The decision is a pure function over its inputs
// and must run before any mutation is applied.
package access

type Action int

const (
	ActionRead Action = iota
	ActionWrite
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

// Principal is the acting user as established by the token verifier.
// The zero value is an anonymous caller.
type Principal struct {
	ID            uint
	Authenticated bool
	IsStaff       bool
}

// Resource carries the single fact authorization needs: who owns the row.
// A nil OwnerID marks a global catalog entity, writable by staff only.
type Resource struct {
	OwnerID *uint
}

// OwnedBy builds a Resource for a row owned by the given user.
func OwnedBy(ownerID uint) Resource {
	return Resource{OwnerID: &ownerID}
}

// Unowned builds a Resource for global catalog rows (e.g. amenities).
func Unowned() Resource {
	return Resource{}
}

// Authorize returns Allow or Deny for the principal acting on the resource.
func Authorize(p Principal, r Resource, a Action) Decision {
	if a == ActionRead {
		return Allow
	}

	if !p.Authenticated {
		return Deny
	}
	if p.IsStaff {
		return Allow
	}
	if r.OwnerID != nil && *r.OwnerID == p.ID {
		return Allow
	}
	return Deny
}
