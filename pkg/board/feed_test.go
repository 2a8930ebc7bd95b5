package board

import (
	"errors"
	"testing"
)

func page(ids []string, next string) Page {
	items := make([]Post, len(ids))
	for i, id := range ids {
		items[i] = Post{ID: id}
	}
	p := Page{Items: items}
	if next != "" {
		p.NextCursor = next
		p.HasNext = true
	}
	return p
}

func feedIDs(f *Feed) []string {
	ids := make([]string, 0, f.Len())
	for _, p := range f.Items() {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFeed_AccumulatesPagesInOrder(t *testing.T) {
	f := NewFeed(DefaultQuery())

	req1, ok := f.Begin()
	if !ok {
		t.Fatal("Begin() = false, want true for first page")
	}
	if req1.Cursor != "" {
		t.Errorf("first request cursor = %q, want empty", req1.Cursor)
	}
	if !f.Complete(req1, page([]string{"1", "2"}, "c1"), nil) {
		t.Fatal("Complete() = false for fresh response")
	}

	req2, ok := f.Begin()
	if !ok {
		t.Fatal("Begin() = false, want true for second page")
	}
	if req2.Cursor != "c1" {
		t.Errorf("second request cursor = %q, want %q", req2.Cursor, "c1")
	}
	f.Complete(req2, page([]string{"3"}, ""), nil)

	got := feedIDs(f)
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items = %v, want %v", got, want)
		}
	}

	if f.HasNext() {
		t.Error("HasNext() = true after final page, want false")
	}
	if _, ok := f.Begin(); ok {
		t.Error("Begin() = true after exhaustion, want false")
	}
}

func TestFeed_SequentialFetches(t *testing.T) {
	f := NewFeed(DefaultQuery())

	if _, ok := f.Begin(); !ok {
		t.Fatal("Begin() = false, want true")
	}
	if !f.InFlight() {
		t.Error("InFlight() = false after Begin, want true")
	}
	if _, ok := f.Begin(); ok {
		t.Error("Begin() = true while a fetch is in flight, want false")
	}
}

func TestFeed_StaleResponseDiscarded(t *testing.T) {
	f := NewFeed(DefaultQuery())

	// Fetch for query A goes out, then the user changes the search before
	// the response lands.
	reqA, _ := f.Begin()
	if !f.SetSearch("beta") {
		t.Fatal("SetSearch() = false, want true")
	}

	if f.IsCurrent(reqA) {
		t.Error("IsCurrent() = true for superseded request, want false")
	}
	if f.Complete(reqA, page([]string{"a1", "a2"}, "cA"), nil) {
		t.Error("Complete() = true for superseded request, want false")
	}
	if f.Len() != 0 {
		t.Errorf("stale items appended: %v", feedIDs(f))
	}

	// The new query's fetch proceeds normally.
	reqB, ok := f.Begin()
	if !ok {
		t.Fatal("Begin() = false after query change, want true")
	}
	if reqB.Query.Search != "beta" {
		t.Errorf("request search = %q, want %q", reqB.Query.Search, "beta")
	}
	f.Complete(reqB, page([]string{"b1"}, ""), nil)

	got := feedIDs(f)
	if len(got) != 1 || got[0] != "b1" {
		t.Errorf("items = %v, want [b1]", got)
	}
}

func TestFeed_ErrorKeepsState(t *testing.T) {
	f := NewFeed(DefaultQuery())

	req, _ := f.Begin()
	f.Complete(req, page([]string{"1"}, "c1"), nil)

	req2, _ := f.Begin()
	if f.Complete(req2, Page{}, errors.New("boom")) {
		t.Error("Complete() = true on error, want false")
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d after failed fetch, want 1", f.Len())
	}
	if !f.HasNext() {
		t.Error("HasNext() = false after failed fetch, want true for retry")
	}

	// Retry picks up the same cursor.
	req3, ok := f.Begin()
	if !ok {
		t.Fatal("Begin() = false on retry, want true")
	}
	if req3.Cursor != "c1" {
		t.Errorf("retry cursor = %q, want %q", req3.Cursor, "c1")
	}
}

func TestFeed_QueryChangeResets(t *testing.T) {
	setters := []struct {
		name   string
		change func(f *Feed) bool
		same   func(f *Feed) bool
	}{
		{
			name:   "search",
			change: func(f *Feed) bool { return f.SetSearch("x") },
			same:   func(f *Feed) bool { return f.SetSearch("x") },
		},
		{
			name:   "category",
			change: func(f *Feed) bool { return f.SetCategory(CategoryQNA) },
			same:   func(f *Feed) bool { return f.SetCategory(CategoryQNA) },
		},
		{
			name:   "sort",
			change: func(f *Feed) bool { return f.SetSort(SortByTitle) },
			same:   func(f *Feed) bool { return f.SetSort(SortByTitle) },
		},
		{
			name:   "order",
			change: func(f *Feed) bool { return f.SetOrder(OrderAsc) },
			same:   func(f *Feed) bool { return f.SetOrder(OrderAsc) },
		},
		{
			name:   "bounds",
			change: func(f *Feed) bool { return f.SetBounds("2026-01-01T00:00:00Z", "") },
			same:   func(f *Feed) bool { return f.SetBounds("2026-01-01T00:00:00Z", "") },
		},
	}

	for _, tt := range setters {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFeed(DefaultQuery())
			req, _ := f.Begin()
			f.Complete(req, page([]string{"1"}, ""), nil)

			if !tt.change(f) {
				t.Fatal("setter reported no change, want change")
			}
			if f.Len() != 0 {
				t.Errorf("Len() = %d after query change, want 0", f.Len())
			}
			if !f.HasNext() {
				t.Error("HasNext() = false after reset, want true")
			}

			if tt.same(f) {
				t.Error("setter reported change for identical value, want no change")
			}
		})
	}
}

func TestFeed_RefreshRestartsSameQuery(t *testing.T) {
	f := NewFeed(DefaultQuery())
	f.SetSearch("keep")

	req, _ := f.Begin()
	f.Complete(req, page([]string{"1"}, ""), nil)

	f.Refresh()
	if f.Len() != 0 {
		t.Errorf("Len() = %d after refresh, want 0", f.Len())
	}
	req2, ok := f.Begin()
	if !ok {
		t.Fatal("Begin() = false after refresh, want true")
	}
	if req2.Query.Search != "keep" {
		t.Errorf("refresh changed the query: search = %q", req2.Query.Search)
	}
	if req2.Cursor != "" {
		t.Errorf("refresh cursor = %q, want empty", req2.Cursor)
	}
}
