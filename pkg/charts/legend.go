// Package charts provides the legend model and series shaping shared by the
// dashboard panels. Everything here is pure state-in, state-out so panel
// behavior is testable without a terminal.
package charts

// Palette is the default series color cycle, applied by label position.
var Palette = []string{"#F23D67", "#22C55E", "#06B6D4", "#F97316", "#A855F7", "#2563EB", "#9333EA"}

// Entry is one legend item keyed by series or category label.
type Entry struct {
	Label   string
	Color   string
	Visible bool
}

// Legend is the ordered legend state for one panel.
type Legend []Entry

// NewLegend builds a legend for the given labels with palette colors, all
// visible.
func NewLegend(labels []string) Legend {
	return Reconcile(nil, labels)
}

// Reconcile merges existing legend state with freshly fetched labels: labels
// that persist keep their user-chosen color and visibility, new labels are
// appended with a palette color, and labels no longer present are dropped.
// The result follows the incoming label order.
func Reconcile(old Legend, labels []string) Legend {
	prev := make(map[string]Entry, len(old))
	for _, e := range old {
		prev[e.Label] = e
	}

	next := make(Legend, 0, len(labels))
	for i, label := range labels {
		if e, ok := prev[label]; ok {
			next = append(next, e)
			continue
		}
		next = append(next, Entry{
			Label:   label,
			Color:   Palette[i%len(Palette)],
			Visible: true,
		})
	}
	return next
}

// Toggle flips visibility of the entry with the given label.
func (l Legend) Toggle(label string) {
	for i := range l {
		if l[i].Label == label {
			l[i].Visible = !l[i].Visible
			return
		}
	}
}

// ToggleIndex flips visibility of the i-th entry.
func (l Legend) ToggleIndex(i int) {
	if i >= 0 && i < len(l) {
		l[i].Visible = !l[i].Visible
	}
}

// Visible reports whether the labeled entry is present and visible.
func (l Legend) Visible(label string) bool {
	for _, e := range l {
		if e.Label == label {
			return e.Visible
		}
	}
	return false
}

// Color returns the entry's color, or "" when the label is unknown.
func (l Legend) Color(label string) string {
	for _, e := range l {
		if e.Label == label {
			return e.Color
		}
	}
	return ""
}

// Labels returns the legend's labels in order.
func (l Legend) Labels() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Label
	}
	return out
}
