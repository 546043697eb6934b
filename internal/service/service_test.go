package service

import (
	"testing"

	"synthlab/internal/database"
	"synthlab/internal/models"
	"synthlab/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type serviceEnv struct {
	db          *gorm.DB
	users       *UserService
	catalog     *CatalogService
	synthesizes *SynthesizeService
}

func setupServices(t *testing.T) *serviceEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	compRepo := repository.NewChemComponentRepository(db)
	synthRepo := repository.NewSynthesizeRepository(db)

	return &serviceEnv{
		db:          db,
		users:       NewUserService(userRepo),
		catalog:     NewCatalogService(tagRepo, compRepo),
		synthesizes: NewSynthesizeService(synthRepo, tagRepo, compRepo),
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "Seeded", Password: "hashed", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}
