package services

import (
	"fmt"
	"strings"
	"testing"

	"leaderboard-system/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own named in-memory database so unique
// constraints don't leak between tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PointsHistory{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, points int) models.User {
	t.Helper()

	user := models.User{ID: uuid.NewString(), Name: name, TotalPoints: points}
	require.NoError(t, db.Create(&user).Error)
	return user
}
