package board

import "testing"

func TestClampWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "below minimum", width: 40, expected: MinColumnWidth},
		{name: "at minimum", width: MinColumnWidth, expected: MinColumnWidth},
		{name: "in range", width: 250, expected: 250},
		{name: "at maximum", width: MaxColumnWidth, expected: MaxColumnWidth},
		{name: "above maximum", width: 900, expected: MaxColumnWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampWidth(tt.width); got != tt.expected {
				t.Errorf("ClampWidth(%d) = %d, want %d", tt.width, got, tt.expected)
			}
		})
	}
}

func TestColumns_Resize(t *testing.T) {
	cs := DefaultColumns()

	cs.Resize("title", 5000)
	cs.Resize("tags", 1)
	cs.Resize("unknown", 300)

	for _, c := range cs {
		switch c.Key {
		case "title":
			if c.Width != MaxColumnWidth {
				t.Errorf("title width = %d, want clamped to %d", c.Width, MaxColumnWidth)
			}
		case "tags":
			if c.Width != MinColumnWidth {
				t.Errorf("tags width = %d, want clamped to %d", c.Width, MinColumnWidth)
			}
		}
	}
}

func TestColumns_ToggleVisible(t *testing.T) {
	cs := DefaultColumns()

	cs.ToggleVisible("tags")
	visible := cs.Visible()
	for _, c := range visible {
		if c.Key == "tags" {
			t.Error("tags still visible after toggle")
		}
	}

	cs.ToggleVisible("tags")
	if len(cs.Visible()) != len(DefaultColumns()) {
		t.Error("second toggle did not restore the column")
	}

	// The actions column must always stay reachable.
	cs.ToggleVisible(ColumnActions)
	found := false
	for _, c := range cs.Visible() {
		if c.Key == ColumnActions {
			found = true
		}
	}
	if !found {
		t.Error("actions column was hidden")
	}
}

func TestColumns_VisibleKeepsOrder(t *testing.T) {
	cs := DefaultColumns()
	cs.ToggleVisible("category")

	visible := cs.Visible()
	expected := []string{"title", "tags", "createdAt", ColumnActions}
	if len(visible) != len(expected) {
		t.Fatalf("visible count = %d, want %d", len(visible), len(expected))
	}
	for i, key := range expected {
		if visible[i].Key != key {
			t.Errorf("visible[%d] = %s, want %s", i, visible[i].Key, key)
		}
	}
}
