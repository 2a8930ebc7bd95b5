package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/marshallshelly/boardwalk/pkg/board"
)

// PostsClient is the typed client for the /posts resource family.
type PostsClient struct {
	c *Client
}

// NewPostsClient creates a posts client over the gateway.
func NewPostsClient(c *Client) *PostsClient {
	return &PostsClient{c: c}
}

// PostPatch is a partial update; nil fields are left untouched.
type PostPatch struct {
	Title    *string         `json:"title,omitempty"`
	Body     *string         `json:"body,omitempty"`
	Category *board.Category `json:"category,omitempty"`
	Tags     *[]string       `json:"tags,omitempty"`
}

// queryValues encodes the filter tuple, omitting empty fields entirely so
// the server never sees open-ended markers.
func queryValues(q board.Query, cursor string) url.Values {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", string(q.Category))
	}
	if q.Sort != "" {
		v.Set("sort", string(q.Sort))
	}
	if q.Order != "" {
		v.Set("order", string(q.Order))
	}
	if cursor != "" {
		v.Set("nextCursor", cursor)
	}
	if q.From != "" {
		v.Set("from", q.From)
	}
	if q.To != "" {
		v.Set("to", q.To)
	}
	return v
}

// List fetches one page of the listing for the given query and cursor.
func (p *PostsClient) List(ctx context.Context, q board.Query, cursor string) (board.Page, error) {
	raw, err := p.c.Get(ctx, "/posts", queryValues(q, cursor), true)
	if err != nil {
		return board.Page{}, err
	}
	return DecodePostsPage(raw)
}

// DecodePostsPage handles both documented response shapes: a bare array is a
// single, final page; an object carries items plus an optional cursor whose
// presence implies another page. No stronger pagination semantics are
// inferred from the array form.
func DecodePostsPage(raw json.RawMessage) (board.Page, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []board.Post
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return board.Page{}, err
		}
		return board.Page{Items: items}, nil
	}

	var payload struct {
		Items      []board.Post `json:"items"`
		NextCursor *string      `json:"nextCursor"`
	}
	if len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return board.Page{}, err
		}
	}

	page := board.Page{Items: payload.Items}
	if payload.NextCursor != nil && *payload.NextCursor != "" {
		page.NextCursor = *payload.NextCursor
		page.HasNext = true
	}
	return page, nil
}

// Get fetches a single post by id.
func (p *PostsClient) Get(ctx context.Context, id string) (board.Post, error) {
	raw, err := p.c.Request(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), nil, true)
	if err != nil {
		return board.Post{}, err
	}
	var post board.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return board.Post{}, err
	}
	return post, nil
}

// Create submits a new post.
func (p *PostsClient) Create(ctx context.Context, input board.PostInput) (board.Post, error) {
	raw, err := p.c.Request(ctx, http.MethodPost, "/posts", input, true)
	if err != nil {
		return board.Post{}, err
	}
	var post board.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return board.Post{}, err
	}
	return post, nil
}

// Update applies a partial update to the post with the given immutable id.
func (p *PostsClient) Update(ctx context.Context, id string, patch PostPatch) (board.Post, error) {
	raw, err := p.c.Request(ctx, http.MethodPatch, "/posts/"+url.PathEscape(id), patch, true)
	if err != nil {
		return board.Post{}, err
	}
	var post board.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return board.Post{}, err
	}
	return post, nil
}

// UpdateFull overwrites all mutable fields from a validated input.
func (p *PostsClient) UpdateFull(ctx context.Context, id string, input board.PostInput) (board.Post, error) {
	return p.Update(ctx, id, PostPatch{
		Title:    &input.Title,
		Body:     &input.Body,
		Category: &input.Category,
		Tags:     &input.Tags,
	})
}

// Delete removes a post. Callers must confirm with the user first; there is
// no undo.
func (p *PostsClient) Delete(ctx context.Context, id string) error {
	_, err := p.c.Request(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), nil, true)
	return err
}
