package board

// Feed owns the query state and pagination chain for the posts listing and
// accumulates fetched pages into one flattened item list.
//
// Fetching itself happens elsewhere (an HTTP client driven by the view
// layer); the feed only hands out page requests and merges results. Each
// query change bumps an epoch counter and every request carries the epoch it
// was issued under, so a response that lands after the query moved on is
// recognized as stale and dropped instead of being appended to a list it no
// longer belongs to.
type Feed struct {
	query      Query
	items      []Post
	nextCursor string
	started    bool
	exhausted  bool
	inFlight   bool
	epoch      int
}

// PageRequest identifies one page fetch: the query and cursor to send, and
// the epoch the request belongs to.
type PageRequest struct {
	Query  Query
	Cursor string
	epoch  int
}

// NewFeed creates a feed starting from the given query.
func NewFeed(query Query) *Feed {
	return &Feed{query: query}
}

// Query returns the current query state.
func (f *Feed) Query() Query { return f.query }

// Items returns the flattened list of all fetched pages in arrival order.
func (f *Feed) Items() []Post { return f.items }

// Len returns the number of accumulated items.
func (f *Feed) Len() int { return len(f.items) }

// InFlight reports whether a page fetch is outstanding.
func (f *Feed) InFlight() bool { return f.inFlight }

// Started reports whether the first page for the current query has loaded.
func (f *Feed) Started() bool { return f.started }

// HasNext reports whether another page can be requested.
func (f *Feed) HasNext() bool { return !f.exhausted }

// SetSearch updates the search text. Callers should debounce keystrokes
// before invoking this; see Debouncer.
func (f *Feed) SetSearch(s string) bool {
	if f.query.Search == s {
		return false
	}
	f.query.Search = s
	f.reset()
	return true
}

// SetCategory updates the category filter ("" means all).
func (f *Feed) SetCategory(c Category) bool {
	if f.query.Category == c {
		return false
	}
	f.query.Category = c
	f.reset()
	return true
}

// SetSort updates the sort field.
func (f *Feed) SetSort(s SortField) bool {
	if f.query.Sort == s {
		return false
	}
	f.query.Sort = s
	f.reset()
	return true
}

// SetOrder updates the sort direction.
func (f *Feed) SetOrder(o SortOrder) bool {
	if f.query.Order == o {
		return false
	}
	f.query.Order = o
	f.reset()
	return true
}

// SetBounds updates the createdAt range filter. Bounds are ISO-8601 UTC
// instants, "" for an open end.
func (f *Feed) SetBounds(from, to string) bool {
	if f.query.From == from && f.query.To == to {
		return false
	}
	f.query.From = from
	f.query.To = to
	f.reset()
	return true
}

// Refresh discards all accumulated pages and restarts from the first page
// without changing the query.
func (f *Feed) Refresh() {
	f.reset()
}

// Begin requests the next page. It returns false when a fetch is already in
// flight or no further page exists; otherwise it marks the feed in flight
// and returns the request to dispatch. Page fetches for one query are
// strictly sequential: a second Begin before Complete is a no-op.
func (f *Feed) Begin() (PageRequest, bool) {
	if f.inFlight || f.exhausted {
		return PageRequest{}, false
	}
	f.inFlight = true
	return PageRequest{Query: f.query, Cursor: f.nextCursor, epoch: f.epoch}, true
}

// IsCurrent reports whether the request still belongs to the current query,
// i.e. its result would not be discarded as stale.
func (f *Feed) IsCurrent(req PageRequest) bool {
	return req.epoch == f.epoch
}

// Complete settles a page fetch. Results are appended in arrival order, but
// only when the request still matches the current epoch; a response for a
// superseded query is discarded and the method reports false. On a fetch
// error the feed stays where it was so the caller may retry.
func (f *Feed) Complete(req PageRequest, page Page, err error) bool {
	if req.epoch != f.epoch {
		return false
	}
	f.inFlight = false
	if err != nil {
		return false
	}

	f.items = append(f.items, page.Items...)
	f.started = true
	if page.HasNext {
		f.nextCursor = page.NextCursor
	} else {
		f.nextCursor = ""
		f.exhausted = true
	}
	return true
}

func (f *Feed) reset() {
	f.items = nil
	f.nextCursor = ""
	f.started = false
	f.exhausted = false
	f.inFlight = false
	f.epoch++
}
