package models

import "time"

// User carries its password only as a bcrypt hash. No part of the codebase
// exposes a read accessor for the original value; responses go through
// api.UserSnapshot which omits the hash entirely.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null" json:"-"`
	ImageURL     string    `gorm:"not null;default:''"`
	Bio          string    `gorm:"not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`

	Recipes []Recipe `gorm:"foreignKey:UserID"`
}
