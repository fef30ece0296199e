package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"accountd/app/controllers"
	"accountd/app/dto"
	"accountd/app/middleware"
	"accountd/app/models"
	"accountd/app/repo"
	"accountd/app/services"
	"accountd/router"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	handler http.Handler
	users   *services.UserService
	db      *gorm.DB
}

// newTestApp wires the full stack over a throwaway sqlite database, seeded
// with the bootstrap admin.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Token{}))

	userSvc := services.NewUserService(repo.NewUserRepository(gdb))
	authSvc := services.NewAuthService(repo.NewTokenRepository(gdb))
	require.NoError(t, userSvc.EnsureAdmin("admin", "admin123"))

	h := router.NewRouter(
		controllers.NewAuthController(userSvc, authSvc),
		controllers.NewUserController(userSvc),
		&middleware.Auth{Tokens: authSvc},
	)
	return &testApp{handler: h, users: userSvc, db: gdb}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

// login returns the bearer token for the given credentials, failing the test
// if the login is rejected.
func (a *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (a *testApp) createUser(t *testing.T, username, password string) dto.UserView {
	t.Helper()
	view, err := a.users.CreateUser(dto.CreateUserRequest{Username: username, Password: password})
	require.NoError(t, err)
	return *view
}

func (a *testApp) userCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, a.db.Model(&models.User{}).Count(&count).Error)
	return count
}
