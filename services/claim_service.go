package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"leaderboard-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Award bounds for a single claim, inclusive.
const (
	minAward = 1
	maxAward = 10
)

type ClaimService struct {
	DB          *gorm.DB
	Ranking     *RankingService
	Broadcaster *Broadcaster
}

// ClaimResult is what a completed claim returns to the caller and, via the
// pointsClaimed event, to every connected client.
type ClaimResult struct {
	PointsAwarded int
	User          models.User
	Users         []models.User
}

func NewClaimService(db *gorm.DB, ranking *RankingService, broadcaster *Broadcaster) *ClaimService {
	return &ClaimService{DB: db, Ranking: ranking, Broadcaster: broadcaster}
}

// ClaimPoints awards a uniform random 1-10 bonus to the user, appends a
// history entry, re-ranks the board and notifies connected clients. The user
// update and history insert commit together; the re-rank runs after commit
// and may transiently lag under concurrent claims.
func (s *ClaimService) ClaimPoints(ctx context.Context, userID string) (*ClaimResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	award := minAward + rand.Intn(maxAward-minAward+1)

	var user models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
			}
			return err
		}

		user.TotalPoints += award
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		entry := models.PointsHistory{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			UserName:      user.Name,
			PointsAwarded: award,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	users, err := s.Ranking.RecomputeRanks(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == user.ID {
			user = u
			break
		}
	}

	s.Broadcaster.Publish(Event{
		Name: EventPointsClaimed,
		Data: PointsClaimedPayload{User: user, PointsAwarded: award, Users: users},
	})

	log.Printf("🎯 %s claimed %d points (total=%d, rank=%d)", user.Name, award, user.TotalPoints, user.Rank)
	return &ClaimResult{PointsAwarded: award, User: user, Users: users}, nil
}
