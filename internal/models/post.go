package models

import "time"

// Post is a published entry. PubDate is assigned once at creation and never
// updated; every listing orders by PubDate descending with ID as tiebreak.
type Post struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"autoCreateTime;<-:create;index" json:"pub_date"`
	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	// GroupID is nullable: a post may live outside any community, and
	// deleting a group clears the reference instead of removing the post.
	GroupID  *uint  `gorm:"index" json:"group_id"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	ImageURL string `json:"image_url"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}
