package services

import (
	"context"

	"leaderboard-system/models"

	"gorm.io/gorm"
)

// Result caps for history reads.
const (
	globalHistoryLimit = 50
	userHistoryLimit   = 20
)

type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// ListHistory returns the most recent claims across all users, newest first.
func (s *HistoryService) ListHistory(ctx context.Context) ([]models.PointsHistory, error) {
	var entries []models.PointsHistory
	err := s.DB.WithContext(ctx).
		Order("timestamp DESC").
		Limit(globalHistoryLimit).
		Find(&entries).Error
	return entries, err
}

// ListHistoryForUser returns the most recent claims for one user, newest
// first. An unknown id simply yields an empty list.
func (s *HistoryService) ListHistoryForUser(ctx context.Context, userID string) ([]models.PointsHistory, error) {
	var entries []models.PointsHistory
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(userHistoryLimit).
		Find(&entries).Error
	return entries, err
}
