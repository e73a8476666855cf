package operator

import "errors"

var ErrInvalidRole = errors.New("invalid operator role")

type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleAdmin:
		return true
	default:
		return false
	}
}

var roleHierarchy = map[Role]int{
	RoleViewer: 1,
	RoleAdmin:  2,
}

// AtLeast reports whether r grants at least the privileges of floor.
func (r Role) AtLeast(floor Role) bool {
	level, ok := roleHierarchy[r]
	floorLevel, floorOK := roleHierarchy[floor]
	return ok && floorOK && level >= floorLevel
}
