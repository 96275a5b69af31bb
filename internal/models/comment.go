// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment is a reply attached to a post.
//
// AuthorID and PostID are always set at creation time; they are nullable only
// so that the schema-level CASCADE rules can run when the referenced user or
// post is deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  *uint     `gorm:"index" json:"author_id,omitempty"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	PostID    *uint     `gorm:"index" json:"post_id,omitempty"`
	Post      *Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
