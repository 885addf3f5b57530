package models

// Tag is a label shared across posts. Names are globally unique.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}

// PostTag is the join row linking a post to a tag. It is registered as an
// explicit join table so cascade deletes are repository operations rather
// than ORM side effects.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}
