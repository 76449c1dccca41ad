package database

import (
	"fmt"
	"time"

	"github.com/sawamura/taskhub/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the table shapes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Namespace{},
		&models.Membership{},
		&models.Task{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return addIndexes(db)
}

// addIndexes adds the secondary indexes the reporting queries lean on.
func addIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"items", "idx_items_namespace_id", "namespace_id"},
		{"items", "idx_items_assignee_id", "assignee_id"},
		{"items", "idx_items_owner_id", "owner_id"},
		{"items", "idx_items_status", "status"},
		{"user_namespaces", "idx_user_namespaces_namespace_id", "namespace_id"},
		{"user_namespaces", "idx_user_namespaces_user_id", "user_id"},
	}

	for _, idx := range indexes {
		sql := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// Seed makes sure the protected default namespace and the configured
// current user exist, with the user as an owner of the default namespace.
// Safe to run on every startup.
func Seed(db *gorm.DB, userName string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Where("name = ?", userName).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{Name: userName}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to seed user %q: %w", userName, err)
			}
		} else if err != nil {
			return err
		}

		var ns models.Namespace
		err = tx.Where("name = ?", models.DefaultNamespace).First(&ns).Error
		if err == gorm.ErrRecordNotFound {
			ns = models.Namespace{Name: models.DefaultNamespace, CreatedBy: &user.ID}
			if err := tx.Create(&ns).Error; err != nil {
				return fmt.Errorf("failed to seed default namespace: %w", err)
			}
		} else if err != nil {
			return err
		}

		var member models.Membership
		err = tx.Where("user_id = ? AND namespace_id = ?", user.ID, ns.ID).First(&member).Error
		if err == gorm.ErrRecordNotFound {
			member = models.Membership{
				UserID:      user.ID,
				NamespaceID: ns.ID,
				Role:        models.RoleOwner,
				CreatedAt:   time.Now(),
			}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to seed owner membership: %w", err)
			}
		} else if err != nil {
			return err
		}

		return nil
	})
}
