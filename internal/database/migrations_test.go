package database

import (
	"testing"

	"github.com/sawamura/taskhub/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestSeed_CreatesUserDefaultNamespaceAndOwner(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Seed(db, "alice"))

	var user models.User
	require.NoError(t, db.Where("name = ?", "alice").First(&user).Error)

	var ns models.Namespace
	require.NoError(t, db.Where("name = ?", models.DefaultNamespace).First(&ns).Error)
	require.True(t, ns.IsProtected())

	var member models.Membership
	require.NoError(t, db.Where("user_id = ? AND namespace_id = ?", user.ID, ns.ID).First(&member).Error)
	require.Equal(t, models.RoleOwner, member.Role)
}

func TestSeed_Idempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Seed(db, "alice"))
	require.NoError(t, Seed(db, "alice"))

	var users, namespaces, members int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Namespace{}).Count(&namespaces).Error)
	require.NoError(t, db.Model(&models.Membership{}).Count(&members).Error)

	require.EqualValues(t, 1, users)
	require.EqualValues(t, 1, namespaces)
	require.EqualValues(t, 1, members)
}

func TestSeed_SecondUserJoinsExistingDefault(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Seed(db, "alice"))
	require.NoError(t, Seed(db, "bob"))

	var namespaces int64
	require.NoError(t, db.Model(&models.Namespace{}).Count(&namespaces).Error)
	require.EqualValues(t, 1, namespaces)

	var members int64
	require.NoError(t, db.Model(&models.Membership{}).Count(&members).Error)
	require.EqualValues(t, 2, members)
}

func TestMigrate_IsRerunnable(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, Migrate(db))
}
