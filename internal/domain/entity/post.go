package entity

import "time"

// Post is a community feed entry.
type Post struct {
	ID            string
	UserID        string
	UserName      string
	Type          string
	Title         string
	Content       string
	ImageURL      string
	Tags          []string
	IsPublic      bool
	LikesCount    int
	CommentsCount int
	CreatedAt     time.Time
}
