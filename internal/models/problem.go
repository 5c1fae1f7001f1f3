package models

type Problem struct {
	Slug       string `gorm:"primaryKey;size:255" json:"slug"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Difficulty string `gorm:"size:20" json:"difficulty"`
	Points     int    `gorm:"not null;default:0" json:"points"`
}

func (Problem) TableName() string {
	return "problems"
}
