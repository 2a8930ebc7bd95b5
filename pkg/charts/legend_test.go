package charts

import (
	"reflect"
	"testing"
)

func TestNewLegend(t *testing.T) {
	l := NewLegend([]string{"a", "b", "c"})

	if len(l) != 3 {
		t.Fatalf("len = %d, want 3", len(l))
	}
	for i, e := range l {
		if !e.Visible {
			t.Errorf("entry %q not visible by default", e.Label)
		}
		if e.Color != Palette[i] {
			t.Errorf("entry %q color = %s, want %s", e.Label, e.Color, Palette[i])
		}
	}
}

func TestReconcile(t *testing.T) {
	old := NewLegend([]string{"a", "b", "c"})
	old.Toggle("b")
	old[2].Color = "#000000" // user-picked

	next := Reconcile(old, []string{"c", "b", "d"})

	if got := next.Labels(); !reflect.DeepEqual(got, []string{"c", "b", "d"}) {
		t.Fatalf("labels = %v, want incoming order [c b d]", got)
	}
	if next.Visible("b") {
		t.Error("b became visible again; toggle state must survive reconciliation")
	}
	if !next.Visible("c") {
		t.Error("c lost its visibility")
	}
	if next.Color("c") != "#000000" {
		t.Errorf("c color = %s, want the user-picked #000000", next.Color("c"))
	}
	if !next.Visible("d") {
		t.Error("new label d should default to visible")
	}
	if next.Color("d") == "" {
		t.Error("new label d should get a palette color")
	}
	if next.Visible("a") || next.Color("a") != "" {
		t.Error("dropped label a still present")
	}
}

func TestReconcile_PaletteWraps(t *testing.T) {
	labels := make([]string, len(Palette)+2)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	l := NewLegend(labels)
	if l[len(Palette)].Color != Palette[0] {
		t.Errorf("color = %s, want palette to wrap to %s", l[len(Palette)].Color, Palette[0])
	}
}

func TestLegend_Toggle(t *testing.T) {
	l := NewLegend([]string{"a", "b"})

	l.Toggle("a")
	if l.Visible("a") {
		t.Error("a visible after toggle")
	}
	l.Toggle("a")
	if !l.Visible("a") {
		t.Error("a hidden after second toggle")
	}

	l.Toggle("missing") // no-op
	l.ToggleIndex(1)
	if l.Visible("b") {
		t.Error("b visible after ToggleIndex(1)")
	}
	l.ToggleIndex(99) // out of range, no-op
}

func TestLegend_UnknownLabel(t *testing.T) {
	l := NewLegend([]string{"a"})
	if l.Visible("nope") {
		t.Error("Visible(unknown) = true, want false")
	}
	if l.Color("nope") != "" {
		t.Error("Color(unknown) != empty")
	}
}
