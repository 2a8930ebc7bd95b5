// Package board holds the discussion-board domain model and the client-side
// state machines (feed pagination, form editing, column layout) that drive
// the interactive views.
package board

import (
	"fmt"
	"time"
)

// Category classifies a post.
type Category string

const (
	CategoryNotice Category = "NOTICE"
	CategoryQNA    Category = "QNA"
	CategoryFree   Category = "FREE"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryFree, CategoryNotice, CategoryQNA}
}

// ParseCategory validates a raw category value.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryNotice, CategoryQNA, CategoryFree:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q (want NOTICE, QNA or FREE)", s)
}

// Post is one board entry as returned by the server. ID, UserID and
// CreatedAt are server-assigned and immutable.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  Category  `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostInput is a normalized create/update payload: trimmed title and body,
// canonical category, deduplicated tags. Produce one via Validate.
type PostInput struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Category Category `json:"category"`
	Tags     []string `json:"tags"`
}

// Page is one page of a posts listing in server-returned order.
type Page struct {
	Items      []Post
	NextCursor string
	HasNext    bool
}
