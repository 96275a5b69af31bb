// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Follow is a directed subscription edge from one user (the follower) to an
// author. The (user, author) pair is unique: a user follows a given author at
// most once.
type Follow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"user_id"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"author_id"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
