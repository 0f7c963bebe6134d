package user

import "hotel-booking/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

type Role string

const (
	RoleGuest        Role = "user"
	RoleReceptionist Role = "receptionist"
	RoleAdmin        Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleReceptionist, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff is true for roles allowed to manage other guests' bookings.
func (r Role) IsStaff() bool {
	return r == RoleReceptionist || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// StaffRoles receive operational events such as new bookings.
func StaffRoles() []Role {
	return []Role{RoleAdmin, RoleReceptionist}
}
