package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sawamura/taskhub/internal/models"
	"github.com/sawamura/taskhub/internal/repository"
	"github.com/sawamura/taskhub/internal/taskerr"
	"gorm.io/gorm"
)

// NamespaceService composes the namespace directory, the user directory
// and the membership ledger into the namespace lifecycle operations.
type NamespaceService struct {
	nsRepo   repository.NamespaceRepository
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewNamespaceService creates a new NamespaceService.
func NewNamespaceService(
	nsRepo repository.NamespaceRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
) *NamespaceService {
	return &NamespaceService{
		nsRepo:   nsRepo,
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// Create creates a namespace and makes the creator its owner. The two
// inserts are one transaction: if the membership cannot be written the
// namespace row is never observable.
func (s *NamespaceService) Create(name string, description *string, creatorID uint64) (*models.Namespace, error) {
	ns := &models.Namespace{
		Name:        name,
		Description: description,
		CreatedBy:   &creatorID,
	}
	member := &models.Membership{
		UserID:    creatorID,
		Role:      models.RoleOwner,
		CreatedAt: time.Now(),
	}

	if err := s.nsRepo.CreateWithOwner(ns, member); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, taskerr.AlreadyExists("Namespace '%s' already exists", name)
		}
		return nil, taskerr.Storage(err, "failed to create namespace")
	}

	return ns, nil
}

// GetByName finds a namespace by exact name.
func (s *NamespaceService) GetByName(name string) (*models.Namespace, error) {
	ns, err := s.nsRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskerr.NotFound("Namespace '%s' not found", name)
		}
		return nil, taskerr.Storage(err, "failed to find namespace")
	}
	return ns, nil
}

// GetByID finds a namespace by ID.
func (s *NamespaceService) GetByID(id uint64) (*models.Namespace, error) {
	ns, err := s.nsRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskerr.NotFound("Namespace %d not found", id)
		}
		return nil, taskerr.Storage(err, "failed to find namespace")
	}
	return ns, nil
}

// List returns all namespaces ordered by name.
func (s *NamespaceService) List() ([]models.Namespace, error) {
	namespaces, err := s.nsRepo.List()
	if err != nil {
		return nil, taskerr.Storage(err, "failed to list namespaces")
	}
	return namespaces, nil
}

// Delete removes a namespace by name. The default namespace is protected,
// and a namespace still referenced by tasks cannot be deleted. Memberships
// go with the namespace.
func (s *NamespaceService) Delete(name string) error {
	if name == models.DefaultNamespace {
		return taskerr.Protected("Cannot delete the '%s' namespace", models.DefaultNamespace)
	}

	ns, err := s.GetByName(name)
	if err != nil {
		return err
	}

	taskCount, err := s.taskRepo.CountForNamespace(ns.ID)
	if err != nil {
		return taskerr.Storage(err, "failed to count tasks in namespace")
	}
	if taskCount > 0 {
		return taskerr.InUse(taskCount,
			"Cannot delete namespace '%s': has %d task(s). Move or delete tasks first.",
			name, taskCount)
	}

	if err := s.nsRepo.Delete(ns.ID); err != nil {
		return taskerr.Storage(err, "failed to delete namespace")
	}

	return nil
}

// AddUser gives a user a role in a namespace. The upsert is idempotent:
// adding an existing member updates their role instead of failing.
//
// The last-owner invariant is enforced on removal only. A role change via
// AddUser can still downgrade the sole owner of a namespace; that mirrors
// the historical behavior and is deliberately left unguarded here.
func (s *NamespaceService) AddUser(namespaceName, userName, roleStr string) error {
	role, ok := models.ParseRole(roleStr)
	if !ok {
		valid := make([]string, len(models.Roles))
		for i, r := range models.Roles {
			valid[i] = string(r)
		}
		return taskerr.InvalidRole("Invalid role '%s'. Must be one of: %s",
			roleStr, strings.Join(valid, ", "))
	}

	ns, err := s.GetByName(namespaceName)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByName(userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskerr.NotFound("User '%s' not found", userName)
		}
		return taskerr.Storage(err, "failed to find user")
	}

	member := &models.Membership{
		UserID:      user.ID,
		NamespaceID: ns.ID,
		Role:        role,
		CreatedAt:   time.Now(),
	}

	if err := s.nsRepo.UpsertMember(member); err != nil {
		return taskerr.Storage(err, "failed to add user to namespace")
	}

	return nil
}

// RemoveUser removes a user's membership from a namespace. Removing the
// only owner is refused so that a populated namespace always retains at
// least one owner.
func (s *NamespaceService) RemoveUser(namespaceName, userName string) error {
	ns, err := s.GetByName(namespaceName)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByName(userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskerr.NotFound("User '%s' not found", userName)
		}
		return taskerr.Storage(err, "failed to find user")
	}

	ownerCount, err := s.nsRepo.CountOwners(ns.ID)
	if err != nil {
		return taskerr.Storage(err, "failed to count namespace owners")
	}

	isOwner := false
	if member, err := s.nsRepo.FindMember(user.ID, ns.ID); err == nil {
		isOwner = member.Role == models.RoleOwner
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerr.Storage(err, "failed to find membership")
	}

	if isOwner && ownerCount <= 1 {
		return taskerr.LastOwner(
			"Cannot remove '%s' from '%s': they are the only owner. Assign another owner first.",
			userName, namespaceName)
	}

	removed, err := s.nsRepo.RemoveMember(user.ID, ns.ID)
	if err != nil {
		return taskerr.Storage(err, "failed to remove user from namespace")
	}
	if !removed {
		return taskerr.NotFound("User '%s' is not a member of namespace '%s'",
			userName, namespaceName)
	}

	return nil
}

// Members returns a namespace's memberships with user names, ordered by
// user name.
func (s *NamespaceService) Members(namespaceName string) ([]models.Membership, error) {
	ns, err := s.GetByName(namespaceName)
	if err != nil {
		return nil, err
	}

	members, err := s.nsRepo.ListMembers(ns.ID)
	if err != nil {
		return nil, taskerr.Storage(err, "failed to list namespace members")
	}

	return members, nil
}

// Role returns the role a user holds in a namespace, or nil without error
// when the pair has no membership.
func (s *NamespaceService) Role(userID, namespaceID uint64) (*models.Role, error) {
	member, err := s.nsRepo.FindMember(userID, namespaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, taskerr.Storage(err, "failed to find membership")
	}
	role := member.Role
	return &role, nil
}
