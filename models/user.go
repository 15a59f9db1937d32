package models

import "time"

// User is one leaderboard participant. Name is immutable after creation and
// unique across the board. Rank is derived from TotalPoints and rewritten on
// every recompute; it is never set directly by a request.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:30;not null"`
	TotalPoints int       `json:"totalPoints" gorm:"not null;default:0"`
	Rank        int       `json:"rank" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
