package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"leaderboard-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxNameLength = 30

// DefaultUsers seeds an empty store on first boot.
var DefaultUsers = []string{
	"Rahul", "Kamal", "Sanak", "Priya", "Amit",
	"Sneha", "Vikash", "Pooja", "Ravi", "Neha",
}

type UserService struct {
	DB          *gorm.DB
	Ranking     *RankingService
	Broadcaster *Broadcaster
}

func NewUserService(db *gorm.DB, ranking *RankingService, broadcaster *Broadcaster) *UserService {
	return &UserService{DB: db, Ranking: ranking, Broadcaster: broadcaster}
}

// AddUser creates a user with zero points, re-ranks the board and notifies
// connected clients. Names are compared case-sensitively.
func (s *UserService) AddUser(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrValidation, maxNameLength)
	}

	var existing models.User
	err := s.DB.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrNameTaken, name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		ID:          uuid.NewString(),
		Name:        name,
		TotalPoints: 0,
		Rank:        0, // placeholder until the recompute below
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
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

	s.Broadcaster.Publish(Event{Name: EventUsersUpdated, Data: users})

	log.Printf("✅ User added: %s", user.Name)
	return &user, nil
}

// ListUsers returns the board ordered by total points descending. Ranks are
// whatever the last recompute persisted.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).
		Order("total_points DESC, created_at ASC, id ASC").
		Find(&users).Error
	return users, err
}

// SeedDefaultUsers populates an empty store with the default roster and
// computes initial ranks. A non-empty store is left untouched.
func (s *UserService) SeedDefaultUsers(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range DefaultUsers {
		user := models.User{ID: uuid.NewString(), Name: name}
		if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
			return err
		}
	}
	if _, err := s.Ranking.RecomputeRanks(ctx); err != nil {
		return err
	}

	log.Println("✅ Default users initialized")
	return nil
}
