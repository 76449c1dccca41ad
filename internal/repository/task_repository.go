package repository

import (
	"github.com/sawamura/taskhub/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List retrieves task records matching the filter
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})

	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// CountForUser counts tasks owned by or assigned to the user
func (r *GormTaskRepository) CountForUser(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("owner_id = ? OR assignee_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

// CountForNamespace counts tasks referencing the namespace
func (r *GormTaskRepository) CountForNamespace(namespaceID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("namespace_id = ?", namespaceID).
		Count(&count).Error
	return count, err
}
