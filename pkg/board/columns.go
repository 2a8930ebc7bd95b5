package board

// Column width bounds in pixels. Resize requests outside the range are
// clamped, never rejected.
const (
	MinColumnWidth = 100
	MaxColumnWidth = 600
)

// ColumnActions is the synthetic actions column key. It cannot be hidden.
const ColumnActions = "actions"

// Column is per-field display state for the posts table. It lives only in
// the client session and is discarded on navigation away.
type Column struct {
	Key     string
	Label   string
	Visible bool
	Width   int
}

// Columns is the ordered table layout.
type Columns []Column

// DefaultColumns returns the initial table layout.
func DefaultColumns() Columns {
	return Columns{
		{Key: "category", Label: "Category", Visible: true, Width: 100},
		{Key: "title", Label: "Title", Visible: true, Width: 260},
		{Key: "tags", Label: "Tags", Visible: true, Width: 200},
		{Key: "createdAt", Label: "Created", Visible: true, Width: 180},
		{Key: ColumnActions, Label: "Actions", Visible: true, Width: 130},
	}
}

// ClampWidth forces a requested width into [MinColumnWidth, MaxColumnWidth].
func ClampWidth(w int) int {
	if w < MinColumnWidth {
		return MinColumnWidth
	}
	if w > MaxColumnWidth {
		return MaxColumnWidth
	}
	return w
}

// Resize sets the width of the column with the given key, clamped to the
// allowed range. Unknown keys are ignored.
func (cs Columns) Resize(key string, width int) {
	for i := range cs {
		if cs[i].Key == key {
			cs[i].Width = ClampWidth(width)
			return
		}
	}
}

// ToggleVisible flips a column's visibility. The actions column is excluded
// so row actions always stay reachable.
func (cs Columns) ToggleVisible(key string) {
	if key == ColumnActions {
		return
	}
	for i := range cs {
		if cs[i].Key == key {
			cs[i].Visible = !cs[i].Visible
			return
		}
	}
}

// Visible returns the columns currently shown, in layout order.
func (cs Columns) Visible() Columns {
	out := make(Columns, 0, len(cs))
	for _, c := range cs {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}
