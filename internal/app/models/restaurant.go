package models

import "time"

// RegionAll is the filter value that selects every region.
const RegionAll = "전체"

// Regions is the fixed set of region names a restaurant can be listed under.
var Regions = []string{
	"서울",
	"경기도",
	"인천",
	"부산",
	"대구",
	"울산",
	"대전",
	"광주",
	"창원",
	"제주",
}

// IsValidRegion reports whether region is one of the fixed region names.
func IsValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

// Restaurant represents a pet-friendly restaurant listing
type Restaurant struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Region     string    `json:"region" db:"region"`
	Address    string    `json:"address" db:"address"`
	Content    string    `json:"content" db:"content"`
	LikesCount int       `json:"likesCount" db:"likes_count"`
	ImageURL   *string   `json:"imageUrl,omitempty" db:"image_url"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Author *User `json:"author,omitempty"`
}
