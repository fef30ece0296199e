package services

import (
	"path/filepath"
	"testing"

	"accountd/app/models"
	"accountd/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Token{}))
	return gdb
}

func newServices(t *testing.T) (*UserService, *AuthService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	users := NewUserService(repo.NewUserRepository(gdb))
	auth := NewAuthService(repo.NewTokenRepository(gdb))
	return users, auth, gdb
}
