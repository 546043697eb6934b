package repository

import (
	"testing"

	"synthlab/internal/database"
	"synthlab/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "Test User", Password: "hashed-pw"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTag(t *testing.T, db *gorm.DB, userID uint, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, UserID: userID}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func createTestChemComp(t *testing.T, db *gorm.DB, userID uint, name string) *models.ChemComponent {
	t.Helper()
	comp := &models.ChemComponent{Name: name, UserID: userID}
	require.NoError(t, db.Create(comp).Error)
	return comp
}
