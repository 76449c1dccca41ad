package models

import "time"

// DefaultNamespace is the protected workspace every installation starts with.
// It can never be deleted.
const DefaultNamespace = "default"

type Namespace struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   *uint64   `json:"created_by,omitempty"`

	// Relations
	Members []Membership `gorm:"foreignKey:NamespaceID" json:"members,omitempty"`
}

// IsProtected reports whether the namespace is the undeletable default.
func (n *Namespace) IsProtected() bool {
	return n.Name == DefaultNamespace
}
