package models

import (
	"time"
)

// User is a competition participant, created lazily the first time a
// submission is recorded for the username.
//
// TotalScore and ProblemsSolved are cached aggregates over ALL
// competitions (career totals). Per-competition standings are never read
// from here; the leaderboard query recomputes them live, scoped to one
// competition.
type User struct {
	Username       string    `gorm:"primaryKey;size:100" json:"username"`
	TotalScore     int       `gorm:"not null;default:0" json:"total_score"`
	ProblemsSolved int       `gorm:"not null;default:0" json:"problems_solved"`
	LastUpdated    time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

func (User) TableName() string {
	return "users"
}
