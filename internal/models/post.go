package models

import "time"

// Post represents a blog post authored by a user.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Tags      []Tag     `gorm:"many2many:post_tags" json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FriendlyDate returns the creation time formatted for display.
func (p *Post) FriendlyDate() string {
	return p.CreatedAt.Format("Jan 2, 2006, 3:04 PM")
}
