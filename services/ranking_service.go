package services

import (
	"context"

	"leaderboard-system/models"

	"gorm.io/gorm"
)

// RankingService owns the derived rank field. Ranks are a full recompute on
// every write; fine at tens of users, would need an incremental structure at
// scale.
type RankingService struct {
	DB *gorm.DB
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{DB: db}
}

// RecomputeRanks reassigns dense ranks 1..N by descending total points and
// persists every user's rank, changed or not. The secondary sort keys make
// the order among equal totals stable across queries. Returns the freshly
// ranked list so callers can reuse it without a second read.
func (s *RankingService) RecomputeRanks(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).
		Order("total_points DESC, created_at ASC, id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Rank = i + 1
		if err := s.DB.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", users[i].ID).
			Update("rank", users[i].Rank).Error; err != nil {
			return nil, err
		}
	}

	return users, nil
}
