package models

import (
	"time"
)

// Submission records whether a user solved a problem within a
// competition. Identity is the (username, problem_slug, competition_id)
// triple; re-recording the same triple replaces the previous row.
type Submission struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      string     `gorm:"size:100;not null;uniqueIndex:uk_user_problem_comp" json:"username"`
	ProblemSlug   string     `gorm:"size:255;not null;uniqueIndex:uk_user_problem_comp" json:"problem_slug"`
	CompetitionID uint       `gorm:"not null;uniqueIndex:uk_user_problem_comp;index" json:"competition_id"`
	Solved        bool       `gorm:"not null;default:false" json:"solved"`
	SolvedAt      *time.Time `json:"solved_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User        User        `gorm:"foreignKey:Username;references:Username" json:"-"`
	Problem     Problem     `gorm:"foreignKey:ProblemSlug;references:Slug" json:"-"`
	Competition Competition `gorm:"foreignKey:CompetitionID;references:ID" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}
