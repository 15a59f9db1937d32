package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"leaderboard-system/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insertHistory(t *testing.T, db *gorm.DB, userID, userName string, award int, ts time.Time) {
	t.Helper()

	entry := models.PointsHistory{
		ID:            uuid.NewString(),
		UserID:        userID,
		UserName:      userName,
		PointsAwarded: award,
		Timestamp:     ts,
	}
	require.NoError(t, db.Create(&entry).Error)
}

func TestListHistoryCapAndOrder(t *testing.T) {
	db := openTestDB(t)
	history := NewHistoryService(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		insertHistory(t, db, "user-1", fmt.Sprintf("User%d", i), 5, base.Add(time.Duration(i)*time.Minute))
	}

	entries, err := history.ListHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 50)

	// Newest first, and the 10 oldest rows cut off
	assert.Equal(t, "User59", entries[0].UserName)
	assert.Equal(t, "User10", entries[49].UserName)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i].Timestamp.Before(entries[i-1].Timestamp))
	}
}

func TestListHistoryForUserFiltersAndCaps(t *testing.T) {
	db := openTestDB(t)
	history := NewHistoryService(db)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		insertHistory(t, db, "user-a", "A", 3, base.Add(time.Duration(i)*time.Minute))
	}
	for i := 0; i < 5; i++ {
		insertHistory(t, db, "user-b", "B", 7, base.Add(time.Duration(i)*time.Hour))
	}

	entries, err := history.ListHistoryForUser(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, entries, 20)
	for i, e := range entries {
		assert.Equal(t, "user-a", e.UserID)
		if i > 0 {
			assert.True(t, e.Timestamp.Before(entries[i-1].Timestamp))
		}
	}
}

func TestListHistoryForUnknownUser(t *testing.T) {
	db := openTestDB(t)
	history := NewHistoryService(db)

	entries, err := history.ListHistoryForUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListHistoryEmptyStore(t *testing.T) {
	db := openTestDB(t)
	history := NewHistoryService(db)

	entries, err := history.ListHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
