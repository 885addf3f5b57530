// Package models contains data structures for the application's domain models.
package models

// User represents an author account in the Blogly application.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	ImageURL  string `gorm:"not null" json:"image_url"`
	Posts     []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// FullName returns the user's first and last name joined for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
