package services

import (
	"errors"

	"github.com/sawamura/taskhub/internal/models"
	"github.com/sawamura/taskhub/internal/repository"
	"github.com/sawamura/taskhub/internal/taskerr"
	"gorm.io/gorm"
)

// UserService provides the user directory operations.
type UserService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// Create registers a new user. The name is the stable lookup key and must
// be unique.
func (s *UserService) Create(name string, displayName *string, createdBy *uint64) (*models.User, error) {
	user := &models.User{
		Name:        name,
		DisplayName: displayName,
		CreatedBy:   createdBy,
	}

	if err := s.userRepo.Create(user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, taskerr.AlreadyExists("User '%s' already exists", name)
		}
		return nil, taskerr.Storage(err, "failed to create user")
	}

	return user, nil
}

// GetByName finds a user by exact name.
func (s *UserService) GetByName(name string) (*models.User, error) {
	user, err := s.userRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskerr.NotFound("User '%s' not found", name)
		}
		return nil, taskerr.Storage(err, "failed to find user")
	}
	return user, nil
}

// GetByID finds a user by ID.
func (s *UserService) GetByID(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskerr.NotFound("User %d not found", id)
		}
		return nil, taskerr.Storage(err, "failed to find user")
	}
	return user, nil
}

// List returns all users ordered by name.
func (s *UserService) List() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, taskerr.Storage(err, "failed to list users")
	}
	return users, nil
}

// Delete removes a user by name. The delete is refused while the item
// store still holds tasks owned by or assigned to the user; on success the
// user's memberships are removed with the row.
func (s *UserService) Delete(name string) error {
	user, err := s.GetByName(name)
	if err != nil {
		return err
	}

	taskCount, err := s.taskRepo.CountForUser(user.ID)
	if err != nil {
		return taskerr.Storage(err, "failed to count tasks for user")
	}
	if taskCount > 0 {
		return taskerr.InUse(taskCount,
			"Cannot delete user '%s': has %d associated task(s). Reassign or delete tasks first.",
			name, taskCount)
	}

	if err := s.userRepo.Delete(user.ID); err != nil {
		return taskerr.Storage(err, "failed to delete user")
	}

	return nil
}
