package models

import "time"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// Roles lists the accepted role values in display order.
var Roles = []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}

// ParseRole validates a role string at the boundary so that an invalid
// value never reaches storage.
func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Membership ties a user to a namespace with a role. A user holds at most
// one role per namespace; the composite key enforces that.
type Membership struct {
	UserID      uint64    `gorm:"primarykey" json:"user_id"`
	NamespaceID uint64    `gorm:"primarykey" json:"namespace_id"`
	Role        Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Namespace Namespace `gorm:"foreignKey:NamespaceID" json:"namespace,omitempty"`
}

func (Membership) TableName() string {
	return "user_namespaces"
}

// UserName returns the denormalized member name for read paths.
func (m *Membership) UserName() string {
	return m.User.Name
}
