package mockapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marshallshelly/boardwalk/pkg/api"
	"github.com/marshallshelly/boardwalk/pkg/board"
	"github.com/marshallshelly/boardwalk/pkg/mockapi"
)

// memTokens is an in-memory token store shared by both client roles.
type memTokens struct {
	token string
}

func (m *memTokens) Get() (string, bool) { return m.token, m.token != "" }
func (m *memTokens) Set(token string) error {
	m.token = token
	return nil
}

func newTestServer(t *testing.T, seed int) (*httptest.Server, *mockapi.Server) {
	t.Helper()

	cfg := mockapi.DefaultConfig()
	cfg.SeedPosts = seed
	cfg.RatePerMinute = 0

	server, err := mockapi.NewServer(cfg, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts, server
}

// signIn logs in with the demo credentials and returns an authenticated
// client.
func signIn(t *testing.T, ts *httptest.Server) *api.Client {
	t.Helper()

	tokens := &memTokens{}
	client := api.NewClient(ts.URL, tokens)
	cfg := mockapi.DefaultConfig()

	_, err := api.NewAuthClient(client, tokens).Login(context.Background(), cfg.Email, cfg.Password)
	require.NoError(t, err)
	return client
}

func TestServer_Login(t *testing.T) {
	ts, _ := newTestServer(t, 0)
	client := api.NewClient(ts.URL, nil)
	auth := api.NewAuthClient(client, &memTokens{})
	cfg := mockapi.DefaultConfig()

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), cfg.Email, "wrong")
		require.Error(t, err)
		assert.True(t, api.IsStatus(err, http.StatusUnauthorized))
		assert.Equal(t, "invalid email or password", err.Error())
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Login(context.Background(), "nobody@example.com", cfg.Password)
		assert.True(t, api.IsStatus(err, http.StatusUnauthorized))
	})

	t.Run("valid credentials", func(t *testing.T) {
		token, err := auth.Login(context.Background(), cfg.Email, cfg.Password)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

func TestServer_PostsRequireAuth(t *testing.T) {
	ts, _ := newTestServer(t, 5)

	// No token at all.
	client := api.NewClient(ts.URL, nil)
	_, err := api.NewPostsClient(client).List(context.Background(), board.DefaultQuery(), "")
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))

	// A token the server never issued.
	client = api.NewClient(ts.URL, &memTokens{token: "forged"})
	_, err = api.NewPostsClient(client).List(context.Background(), board.DefaultQuery(), "")
	assert.True(t, api.IsStatus(err, http.StatusUnauthorized))
}

func TestServer_PostsCRUD(t *testing.T) {
	ts, _ := newTestServer(t, 0)
	posts := api.NewPostsClient(signIn(t, ts))
	ctx := context.Background()

	created, err := posts.Create(ctx, board.PostInput{
		Title:    "release notes",
		Body:     "v1.2 is out",
		Category: board.CategoryNotice,
		Tags:     []string{"release", "v1.2"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, board.CategoryNotice, created.Category)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := posts.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "release notes", got.Title)

	// Partial update: only the title travels; everything else must survive.
	newTitle := "release notes (edited)"
	updated, err := posts.Update(ctx, created.ID, api.PostPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "v1.2 is out", updated.Body)
	assert.Equal(t, board.CategoryNotice, updated.Category)
	assert.Equal(t, []string{"release", "v1.2"}, updated.Tags)

	require.NoError(t, posts.Delete(ctx, created.ID))

	_, err = posts.Get(ctx, created.ID)
	assert.True(t, api.IsStatus(err, http.StatusNotFound))
}

func TestServer_CreateRejectsInvalidInput(t *testing.T) {
	ts, _ := newTestServer(t, 0)
	posts := api.NewPostsClient(signIn(t, ts))
	ctx := context.Background()

	tests := []struct {
		name  string
		input board.PostInput
	}{
		{
			name:  "missing title",
			input: board.PostInput{Body: "b", Category: board.CategoryFree},
		},
		{
			name:  "forbidden word in body",
			input: board.PostInput{Title: "t", Body: "텔레그램으로 연락주세요", Category: board.CategoryFree},
		},
		{
			name:  "bad category",
			input: board.PostInput{Title: "t", Body: "b", Category: board.Category("SPAM")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := posts.Create(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, api.IsStatus(err, http.StatusUnprocessableEntity), "got %v", err)
		})
	}
}

func TestServer_ListPagination(t *testing.T) {
	ts, _ := newTestServer(t, 95)
	posts := api.NewPostsClient(signIn(t, ts))
	ctx := context.Background()

	query := board.DefaultQuery()
	var all []board.Post
	cursor := ""
	pages := 0
	for {
		page, err := posts.List(ctx, query, cursor)
		require.NoError(t, err)
		pages++
		all = append(all, page.Items...)
		if !page.HasNext {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, all, 95)

	// Default order is newest first.
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt),
			"items out of order at %d", i)
	}
}

func TestServer_ListFilters(t *testing.T) {
	ts, server := newTestServer(t, 0)
	store := server.Store()
	store.Create("u1", board.PostInput{Title: "deploy guide", Body: "steps", Category: board.CategoryNotice})
	store.Create("u2", board.PostInput{Title: "lunch spot", Body: "tacos", Category: board.CategoryFree})

	posts := api.NewPostsClient(signIn(t, ts))
	ctx := context.Background()

	query := board.DefaultQuery()
	query.Search = "deploy"
	page, err := posts.List(ctx, query, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "deploy guide", page.Items[0].Title)

	query = board.DefaultQuery()
	query.Category = board.CategoryFree
	page, err = posts.List(ctx, query, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "lunch spot", page.Items[0].Title)
}

func TestServer_ListRejectsBadParams(t *testing.T) {
	ts, _ := newTestServer(t, 0)
	client := signIn(t, ts)
	ctx := context.Background()

	get := func(path string) int {
		_, err := client.Request(ctx, http.MethodGet, path, nil, true)
		if err == nil {
			return http.StatusOK
		}
		he, ok := err.(*api.HTTPError)
		require.True(t, ok, "unexpected error type: %v", err)
		return he.Status
	}

	assert.Equal(t, http.StatusBadRequest, get("/posts?limit=zero"))
	assert.Equal(t, http.StatusBadRequest, get("/posts?limit=-1"))
	assert.Equal(t, http.StatusBadRequest, get("/posts?category=SPAM"))
	assert.Equal(t, http.StatusBadRequest, get("/posts?from=yesterday"))
	assert.Equal(t, http.StatusBadRequest, get("/posts?nextCursor=!!!"))
}

func TestServer_AnalyticsEndpoints(t *testing.T) {
	ts, _ := newTestServer(t, 0)

	// Analytics is public; no login needed.
	analytics := api.NewAnalyticsClient(api.NewClient(ts.URL, nil))
	ctx := context.Background()

	coffee, err := analytics.TopCoffeeBrands(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, coffee)

	snacks, err := analytics.PopularSnackBrands(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snacks)

	mood, err := analytics.WeeklyMoodTrend(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, mood)

	workout, err := analytics.WeeklyWorkoutTrend(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, workout)

	consumption, err := analytics.CoffeeConsumption(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, consumption.Teams)

	impact, err := analytics.SnackImpact(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, impact.Departments)
}
