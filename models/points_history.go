package models

import "time"

// PointsHistory is an immutable record of one completed claim. UserName is a
// snapshot taken at claim time so history reads never join back to users.
type PointsHistory struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        string    `json:"userId" gorm:"index;not null"`
	UserName      string    `json:"userName" gorm:"not null"`
	PointsAwarded int       `json:"pointsAwarded" gorm:"not null"`
	Timestamp     time.Time `json:"timestamp" gorm:"index;autoCreateTime"`
}
