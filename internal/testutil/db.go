package testutil

import (
	migration "Food-Sharing-Platform/cmd/database/migrate"
	"Food-Sharing-Platform/entities"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with foreign keys on and the
// full schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func CreateUser(t *testing.T, db *gorm.DB, email, password, role string) *entities.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateFood(t *testing.T, db *gorm.DB, name, quantity, location string, owner *string) *entities.Food {
	t.Helper()

	food := &entities.Food{
		Name:        name,
		Quantity:    quantity,
		Time:        "19:00",
		Location:    location,
		Description: "test",
		Image:       "images/default.jpg",
		OwnerEmail:  owner,
	}
	require.NoError(t, db.Create(food).Error)
	return food
}
