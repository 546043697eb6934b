package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"synthlab/internal/config"
	"synthlab/internal/database"
	"synthlab/internal/models"
	"synthlab/internal/repository"
	"synthlab/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server against an in-memory sqlite database, without
// the Prometheus middleware so repeated construction in tests does not
// re-register collectors.
func newTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:       "test_secret",
		UploadDir:       t.TempDir(),
		MaxUploadSizeMB: 5,
	}

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	chemCompRepo := repository.NewChemComponentRepository(db)
	synthesizeRepo := repository.NewSynthesizeRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		userRepo:       userRepo,
		tagRepo:        tagRepo,
		chemCompRepo:   chemCompRepo,
		synthesizeRepo: synthesizeRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.catalogService = service.NewCatalogService(tagRepo, chemCompRepo)
	s.synthesizeService = service.NewSynthesizeService(synthesizeRepo, tagRepo, chemCompRepo)
	s.imageService = service.NewImageService(synthesizeRepo, cfg)

	app := fiber.New()
	s.SetupRoutes(app)

	return app, s
}

// registerUser creates an account through the service layer and returns the
// user together with a valid bearer token.
func registerUser(t *testing.T, s *Server, email string) (*models.User, string) {
	t.Helper()
	user, err := s.userService.Register(t.Context(), service.RegisterInput{
		Email:    email,
		Password: "test password",
		Name:     "Test User",
	})
	require.NoError(t, err)

	token, err := s.generateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
