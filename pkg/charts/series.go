package charts

// Bar is one renderable bar: a label, the value after visibility is applied
// and the color to draw it in.
type Bar struct {
	Label string
	Value float64
	Color string
}

// Bars pairs labels with values and applies the legend: a hidden label
// contributes a zero-valued, colorless bar rather than disappearing, so the
// layout stays stable while the series renders as empty.
func Bars(labels []string, values []float64, legend Legend) []Bar {
	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	bars := make([]Bar, 0, n)
	for i := 0; i < n; i++ {
		b := Bar{Label: labels[i]}
		if legend.Visible(labels[i]) {
			b.Value = values[i]
			b.Color = legend.Color(labels[i])
		}
		bars = append(bars, b)
	}
	return bars
}

// MaxValue returns the largest bar value, at minimum 1 so scaling never
// divides by zero.
func MaxValue(bars []Bar) float64 {
	max := 1.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}

// ScaleWidth maps a value into [0, width] cells relative to max. A positive
// value always occupies at least one cell.
func ScaleWidth(value, max float64, width int) int {
	if value <= 0 || max <= 0 || width <= 0 {
		return 0
	}
	w := int(value / max * float64(width))
	if w < 1 {
		w = 1
	}
	if w > width {
		w = width
	}
	return w
}
