package models

import (
	"time"
)

type Competition struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	StartDate string    `gorm:"size:50;not null" json:"start_date"`
	EndDate   string    `gorm:"size:50;not null" json:"end_date"`
	HasRun    bool      `gorm:"not null;default:false" json:"has_run"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Competition) TableName() string {
	return "competitions"
}
