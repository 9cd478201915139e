package models

import "time"

// CategoryCommunity is the category tag for community board posts.
const CategoryCommunity = "community"

// Post represents a community board post
type Post struct {
	ID         int64     `json:"id" db:"id"`
	Title      *string   `json:"title,omitempty" db:"title"`
	Content    string    `json:"content" db:"content"`
	Hashtags   []string  `json:"hashtags" db:"hashtags"`
	Category   string    `json:"category" db:"category"`
	LikesCount int       `json:"likesCount" db:"likes_count"`
	ImageURL   *string   `json:"imageUrl,omitempty" db:"image_url"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
