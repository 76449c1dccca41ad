package services

import (
	"testing"

	"github.com/sawamura/taskhub/internal/models"
	"github.com/sawamura/taskhub/internal/repository"
	"github.com/sawamura/taskhub/internal/taskerr"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Namespace{},
		&models.Membership{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), repository.NewTaskRepository(db))
}

func TestUserService_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	display := "Test User"
	user, err := svc.Create("testuser", &display, nil)
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	got, err := svc.GetByName("testuser")
	require.NoError(t, err)
	require.Equal(t, "testuser", got.Name)
	require.NotNil(t, got.DisplayName)
	require.Equal(t, "Test User", *got.DisplayName)

	byID, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Name, byID.Name)
}

func TestUserService_CreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.Create("duplicate", nil, nil)
	require.NoError(t, err)

	_, err = svc.Create("duplicate", nil, nil)
	require.Error(t, err)
	require.True(t, taskerr.IsAlreadyExists(err))
	require.Contains(t, err.Error(), "already exists")

	// The collision leaves exactly one row.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("name = ?", "duplicate").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUserService_LookupIsCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.Create("alice", nil, nil)
	require.NoError(t, err)

	_, err = svc.GetByName("Alice")
	require.Error(t, err)
	require.True(t, taskerr.IsNotFound(err))
}

func TestUserService_ListOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	for _, name := range []string{"charlie", "alice", "bob"} {
		_, err := svc.Create(name, nil, nil)
		require.NoError(t, err)
	}

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "alice", users[0].Name)
	require.Equal(t, "bob", users[1].Name)
	require.Equal(t, "charlie", users[2].Name)
}

func TestUserService_DeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	err := svc.Delete("ghost")
	require.Error(t, err)
	require.True(t, taskerr.IsNotFound(err))
}

func TestUserService_DeleteBlockedByTasks(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	user, err := svc.Create("busy", nil, nil)
	require.NoError(t, err)

	task := models.Task{
		Action:      models.ActionTask,
		Title:       "Open work",
		Status:      models.StatusOngoing,
		OwnerID:     user.ID,
		NamespaceID: 1,
		CreateTime:  1000,
	}
	require.NoError(t, db.Create(&task).Error)

	err = svc.Delete("busy")
	require.Error(t, err)
	require.True(t, taskerr.IsInUse(err))
	require.EqualValues(t, 1, err.(*taskerr.Error).Count)

	// Still present.
	_, err = svc.GetByName("busy")
	require.NoError(t, err)
}

func TestUserService_DeleteBlockedByAssignment(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	owner, err := svc.Create("owner", nil, nil)
	require.NoError(t, err)
	assignee, err := svc.Create("assignee", nil, nil)
	require.NoError(t, err)

	task := models.Task{
		Action:      models.ActionTask,
		Title:       "Assigned work",
		Status:      models.StatusPending,
		OwnerID:     owner.ID,
		AssigneeID:  &assignee.ID,
		NamespaceID: 1,
		CreateTime:  1000,
	}
	require.NoError(t, db.Create(&task).Error)

	err = svc.Delete("assignee")
	require.Error(t, err)
	require.True(t, taskerr.IsInUse(err))
}

func TestUserService_DeleteCascadesMemberships(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	nsSvc := NewNamespaceService(
		repository.NewNamespaceRepository(db),
		repository.NewUserRepository(db),
		repository.NewTaskRepository(db),
	)

	creator, err := svc.Create("creator", nil, nil)
	require.NoError(t, err)
	member, err := svc.Create("member", nil, nil)
	require.NoError(t, err)

	_, err = nsSvc.Create("team", nil, creator.ID)
	require.NoError(t, err)
	require.NoError(t, nsSvc.AddUser("team", "member", "viewer"))

	require.NoError(t, svc.Delete("member"))

	var count int64
	require.NoError(t, db.Model(&models.Membership{}).Where("user_id = ?", member.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
