package mockapi

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marshallshelly/boardwalk/pkg/board"
)

// Store is the in-memory post collection behind the mock server. It exists
// so the client can be exercised end to end without any external service.
type Store struct {
	mu    sync.RWMutex
	posts []board.Post
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// listQuery is the parsed /posts query.
type listQuery struct {
	Limit    int
	Search   string
	Category board.Category
	Sort     board.SortField
	Order    board.SortOrder
	Cursor   string
	From     time.Time
	To       time.Time
}

// encodeCursor wraps a list offset into an opaque token. The format is a
// server-side detail; clients must not interpret it.
func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("o:" + strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, error) {
	if cursor == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor")
	}
	s := string(raw)
	if !strings.HasPrefix(s, "o:") {
		return 0, fmt.Errorf("invalid cursor")
	}
	offset, err := strconv.Atoi(s[2:])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid cursor")
	}
	return offset, nil
}

// List filters, sorts and paginates the collection, returning one page and
// the cursor for the next one ("" when exhausted).
func (s *Store) List(q listQuery) ([]board.Post, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offset, err := decodeCursor(q.Cursor)
	if err != nil {
		return nil, "", err
	}

	matched := make([]board.Post, 0, len(s.posts))
	search := strings.ToLower(q.Search)
	for _, p := range s.posts {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Body), search) {
			continue
		}
		if !q.From.IsZero() && p.CreatedAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && p.CreatedAt.After(q.To) {
			continue
		}
		matched = append(matched, p)
	}

	asc := q.Order != board.OrderDesc
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		if q.Sort == board.SortByTitle {
			less = matched[i].Title < matched[j].Title
		} else {
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	limit := q.Limit
	if limit <= 0 {
		limit = 40
	}
	if offset >= len(matched) {
		return []board.Post{}, "", nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	next := ""
	if end < len(matched) {
		next = encodeCursor(end)
	}
	page := make([]board.Post, end-offset)
	copy(page, matched[offset:end])
	return page, next, nil
}

// Get returns the post with the given id.
func (s *Store) Get(id string) (board.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return board.Post{}, false
}

// Create assigns server-side fields and stores the post.
func (s *Store) Create(userID string, input board.PostInput) board.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := board.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     input.Title,
		Body:      input.Body,
		Category:  input.Category,
		Tags:      input.Tags,
		CreatedAt: time.Now().UTC(),
	}
	s.posts = append(s.posts, post)
	return post
}

// Update applies non-nil patch fields to the post with the given id.
func (s *Store) Update(id string, title, body *string, category *board.Category, tags *[]string) (board.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if title != nil {
			s.posts[i].Title = *title
		}
		if body != nil {
			s.posts[i].Body = *body
		}
		if category != nil {
			s.posts[i].Category = *category
		}
		if tags != nil {
			s.posts[i].Tags = *tags
		}
		return s.posts[i], true
	}
	return board.Post{}, false
}

// Delete removes the post with the given id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

// Seed fills the store with n deterministic sample posts so the client has
// something to browse out of the box.
func (s *Store) Seed(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := board.Categories()
	tagPool := []string{"release", "howto", "infra", "random", "meetup", "golang", "til"}
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	for i := 0; i < n; i++ {
		cat := categories[i%len(categories)]
		s.posts = append(s.posts, board.Post{
			ID:       uuid.NewString(),
			UserID:   fmt.Sprintf("user-%d", i%7+1),
			Title:    fmt.Sprintf("Sample post #%03d (%s)", i+1, cat),
			Body:     fmt.Sprintf("Body of sample post %d. Lorem ipsum dolor sit amet, scrolling fodder for the infinite list.", i+1),
			Category: cat,
			Tags:     []string{tagPool[i%len(tagPool)], tagPool[(i+3)%len(tagPool)]},
			CreatedAt: base.Add(time.Duration(i) * 97 * time.Minute),
		})
	}
}
