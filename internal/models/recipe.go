package models

import "time"

// MinInstructionsLength is the minimum accepted length for recipe
// instructions, enforced on every write path.
const MinInstructionsLength = 50

type Recipe struct {
	ID                uint      `gorm:"primaryKey"`
	Title             string    `gorm:"not null"`
	Instructions      string    `gorm:"not null"`
	MinutesToComplete int       `gorm:"not null"`
	UserID            uint      `gorm:"not null;index"`
	User              User      `gorm:"foreignKey:UserID"`
	CreatedAt         time.Time `gorm:"not null"`
}
