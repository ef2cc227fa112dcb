package middleware

import (
	"testing"

	"yalla-server/internal/config"
	"yalla-server/internal/service"
	"yalla-server/internal/testutils"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.InitConfig("")

	gdb := testutils.SetupDB(t)
	service.InitializeSettings()
	service.ClearCache()
	t.Cleanup(service.ClearCache)
	return gdb
}

func resetStatusCache() {
	statusCache.Range(func(key, value interface{}) bool {
		statusCache.Delete(key)
		return true
	})
}
