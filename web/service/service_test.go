package service

import (
	"path/filepath"
	"testing"
	"time"

	"ramen-kiosk/database"
	"ramen-kiosk/database/model"
	"ramen-kiosk/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	logger.InitLogger(logging.ERROR)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.InitDB(dbPath, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return db
}

func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, "test-secret", 30*time.Minute)
}

func registerTestUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *model.User {
	t.Helper()
	auth := newTestAuthService(db)
	require.NoError(t, auth.Register(username, "pw-"+username, isAdmin))

	var user model.User
	require.NoError(t, db.Where("username = ?", username).First(&user).Error)
	return &user
}

func menuItemId(t *testing.T, db *gorm.DB, category model.Category, name string) int {
	t.Helper()
	var item model.MenuItem
	err := db.Where("category = ? AND name = ?", category, name).First(&item).Error
	require.NoError(t, err)
	return item.Id
}

func inventoryQuantity(t *testing.T, db *gorm.DB, itemName string) int {
	t.Helper()
	var counter model.Inventory
	err := db.Where("item_name = ?", itemName).First(&counter).Error
	require.NoError(t, err)
	return counter.Quantity
}
