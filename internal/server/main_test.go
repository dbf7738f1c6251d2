package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"moodrealm/internal/companion"
	"moodrealm/internal/config"
	"moodrealm/internal/database"
	"moodrealm/internal/models"
	"moodrealm/internal/repository"
	"moodrealm/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

// stubModel answers every companion call with reply or err.
type stubModel struct {
	reply string
	err   error
}

func (m *stubModel) Generate(context.Context, []companion.Turn) (string, error) {
	return m.reply, m.err
}

type testEnv struct {
	server *Server
	app    *fiber.App
	db     *gorm.DB
	model  *stubModel
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:             "5000",
		Env:              "test",
		JWTSecret:        "test-secret-that-is-long-enough-for-hs256",
		JWTTTLHours:      1,
		AITimeoutSeconds: 5,
		MediaBackend:     "local",
		MediaUploadDir:   t.TempDir(),
		UploadMaxSizeMB:  3,
		AllowedOrigins:   "http://localhost:5173",
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	s, err := NewServerWithDeps(testConfig(t), db, nil)
	require.NoError(t, err)

	model := &stubModel{reply: "You are not alone."}
	catalog, err := companion.LoadCatalog()
	require.NoError(t, err)
	s.companionService = service.NewCompanionService(repository.NewConversationRepository(db), model, catalog, time.Second)

	app := s.NewApp()
	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	return &testEnv{server: s, app: app, db: db, model: model}
}

// createUser inserts a user directly and returns it with a valid token.
func (e *testEnv) createUser(t *testing.T, name string) (*models.User, string) {
	t.Helper()
	u := &models.User{Name: name, Email: fmt.Sprintf("%s@example.com", name), Password: "unused"}
	require.NoError(t, e.db.Create(u).Error)
	token, err := e.server.generateToken(u.ID)
	require.NoError(t, err)
	return u, token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func message(t *testing.T, data []byte) string {
	t.Helper()
	return decode[map[string]any](t, data)["message"].(string)
}
