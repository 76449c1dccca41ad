package repository

import (
	"errors"
	"fmt"

	"github.com/sawamura/taskhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCreateNamespace is returned when the namespace insert fails inside the create transaction.
	ErrCreateNamespace = errors.New("namespace repository: create namespace failed")
	// ErrCreateOwnerMembership is returned when the owner membership insert fails inside the create transaction.
	ErrCreateOwnerMembership = errors.New("namespace repository: create owner membership failed")
)

// GormNamespaceRepository is a GORM implementation of NamespaceRepository
type GormNamespaceRepository struct {
	db *gorm.DB
}

// NewNamespaceRepository creates a new NamespaceRepository
func NewNamespaceRepository(db *gorm.DB) NamespaceRepository {
	return &GormNamespaceRepository{db: db}
}

// CreateWithOwner creates the namespace and the creator's owner membership
// atomically. If the membership insert fails, the namespace row does not
// persist.
func (r *GormNamespaceRepository) CreateWithOwner(ns *models.Namespace, member *models.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ns).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateNamespace, err)
		}

		member.NamespaceID = ns.ID

		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOwnerMembership, err)
		}

		return nil
	})
}

// FindByName finds a namespace by exact name
func (r *GormNamespaceRepository) FindByName(name string) (*models.Namespace, error) {
	var ns models.Namespace
	if err := r.db.Where("name = ?", name).First(&ns).Error; err != nil {
		return nil, err
	}
	return &ns, nil
}

// FindByID finds a namespace by ID
func (r *GormNamespaceRepository) FindByID(id uint64) (*models.Namespace, error) {
	var ns models.Namespace
	if err := r.db.First(&ns, id).Error; err != nil {
		return nil, err
	}
	return &ns, nil
}

// List returns all namespaces ordered by name
func (r *GormNamespaceRepository) List() ([]models.Namespace, error) {
	var namespaces []models.Namespace
	if err := r.db.Order("name").Find(&namespaces).Error; err != nil {
		return nil, err
	}
	return namespaces, nil
}

// Delete removes a namespace and all of its memberships in a transaction
func (r *GormNamespaceRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("namespace_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Namespace{}, id).Error
	})
}

// UpsertMember inserts a membership, updating the role on a
// (user_id, namespace_id) conflict.
func (r *GormNamespaceRepository) UpsertMember(member *models.Membership) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "namespace_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).
		Create(member).Error
}

// RemoveMember removes a membership and reports whether a row was deleted
func (r *GormNamespaceRepository) RemoveMember(userID, namespaceID uint64) (bool, error) {
	res := r.db.Where("user_id = ? AND namespace_id = ?", userID, namespaceID).
		Delete(&models.Membership{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindMember finds a specific membership
func (r *GormNamespaceRepository) FindMember(userID, namespaceID uint64) (*models.Membership, error) {
	var member models.Membership
	if err := r.db.Where("user_id = ? AND namespace_id = ?", userID, namespaceID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists a namespace's memberships ordered by user name
func (r *GormNamespaceRepository) ListMembers(namespaceID uint64) ([]models.Membership, error) {
	var members []models.Membership
	if err := r.db.Preload("User").
		Joins("JOIN users ON users.id = user_namespaces.user_id").
		Where("user_namespaces.namespace_id = ?", namespaceID).
		Order("users.name").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CountOwners counts the namespace's owner memberships
func (r *GormNamespaceRepository) CountOwners(namespaceID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("namespace_id = ? AND role = ?", namespaceID, models.RoleOwner).
		Count(&count).Error
	return count, err
}
