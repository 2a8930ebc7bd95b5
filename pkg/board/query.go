package board

import (
	"fmt"
	"time"
)

// SortField names a server-side sort key.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByTitle     SortField = "title"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Query is the filter/sort tuple driving a paginated listing. Category ""
// means all categories; From/To are ISO-8601 UTC instants, "" meaning the
// bound is open and omitted from the request.
type Query struct {
	Limit    int
	Search   string
	Category Category
	Sort     SortField
	Order    SortOrder
	From     string
	To       string
}

// DefaultQuery matches the initial listing view: newest first, 40 per page.
func DefaultQuery() Query {
	return Query{
		Limit: 40,
		Sort:  SortByCreatedAt,
		Order: OrderDesc,
	}
}

// localBoundLayouts accepts datetime-local style input, with or without
// seconds, plus a bare date.
var localBoundLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// BoundToISO converts a naive local datetime string to an absolute ISO-8601
// UTC instant for use as a filter bound. An empty input stays empty so the
// bound can be omitted rather than sent as an open-ended marker.
func BoundToISO(value string, loc *time.Location) (string, error) {
	if value == "" {
		return "", nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localBoundLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD[THH:MM])", value)
}
