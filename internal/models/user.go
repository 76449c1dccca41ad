package models

import "time"

type User struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	DisplayName *string   `gorm:"type:varchar(255)" json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   *uint64   `json:"created_by,omitempty"`

	// Relations
	Memberships []Membership `gorm:"foreignKey:UserID" json:"-"`
}

// Display returns the name shown in reports: the display name when set,
// otherwise the login name.
func (u *User) Display() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Name
}
