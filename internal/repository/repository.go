package repository

import (
	"github.com/sawamura/taskhub/internal/models"
)

// UserRepository defines the interface for user directory data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByName finds a user by exact name
	FindByName(name string) (*models.User, error)

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// List returns all users ordered by name
	List() ([]models.User, error)

	// Delete removes a user and their memberships
	Delete(id uint64) error
}

// NamespaceRepository defines the interface for namespace and membership
// data access
type NamespaceRepository interface {
	// CreateWithOwner creates a namespace and its owner membership within
	// a single transaction. A failure partway leaves no partial namespace.
	CreateWithOwner(ns *models.Namespace, member *models.Membership) error

	// FindByName finds a namespace by exact name
	FindByName(name string) (*models.Namespace, error)

	// FindByID finds a namespace by ID
	FindByID(id uint64) (*models.Namespace, error)

	// List returns all namespaces ordered by name
	List() ([]models.Namespace, error)

	// Delete removes a namespace and all of its memberships
	Delete(id uint64) error

	// UpsertMember inserts a membership, or updates its role when the
	// (user, namespace) pair already exists
	UpsertMember(member *models.Membership) error

	// RemoveMember removes a membership; reports whether a row was deleted
	RemoveMember(userID, namespaceID uint64) (bool, error)

	// FindMember finds a specific membership
	FindMember(userID, namespaceID uint64) (*models.Membership, error)

	// ListMembers lists a namespace's memberships ordered by user name,
	// with the user relation loaded for display
	ListMembers(namespaceID uint64) ([]models.Membership, error)

	// CountOwners counts the namespace's owner memberships
	CountOwners(namespaceID uint64) (int64, error)
}

// TaskRepository defines read-only access to the item store. Task rows are
// consumed by the reporting engine and the deletion guards; this subsystem
// never mutates them.
type TaskRepository interface {
	// List retrieves task records matching the filter
	List(filter TaskFilter) ([]models.Task, error)

	// CountForUser counts tasks owned by or assigned to the user
	CountForUser(userID uint64) (int64, error)

	// CountForNamespace counts tasks referencing the namespace
	CountForNamespace(namespaceID uint64) (int64, error)
}

// TaskFilter holds filtering options for listing task records
type TaskFilter struct {
	Action   string
	Statuses []models.TaskStatus
}
