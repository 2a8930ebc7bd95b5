package charts

import "testing"

func TestBars_HiddenSeriesKeepsRow(t *testing.T) {
	legend := NewLegend([]string{"a", "b"})
	legend.Toggle("b")

	bars := Bars([]string{"a", "b"}, []float64{10, 20}, legend)
	if len(bars) != 2 {
		t.Fatalf("len = %d, want 2 (hidden rows stay)", len(bars))
	}
	if bars[0].Value != 10 || bars[0].Color == "" {
		t.Errorf("visible bar = %+v, want value 10 with color", bars[0])
	}
	if bars[1].Value != 0 || bars[1].Color != "" {
		t.Errorf("hidden bar = %+v, want zero value and no color", bars[1])
	}
}

func TestBars_MismatchedLengths(t *testing.T) {
	legend := NewLegend([]string{"a", "b", "c"})
	bars := Bars([]string{"a", "b", "c"}, []float64{1}, legend)
	if len(bars) != 1 {
		t.Errorf("len = %d, want 1 (shortest input wins)", len(bars))
	}
}

func TestMaxValue(t *testing.T) {
	if got := MaxValue(nil); got != 1.0 {
		t.Errorf("MaxValue(nil) = %v, want 1", got)
	}
	bars := []Bar{{Value: 0.2}, {Value: 0.5}}
	if got := MaxValue(bars); got != 1.0 {
		t.Errorf("MaxValue(small) = %v, want floor of 1", got)
	}
	bars = append(bars, Bar{Value: 42})
	if got := MaxValue(bars); got != 42 {
		t.Errorf("MaxValue() = %v, want 42", got)
	}
}

func TestScaleWidth(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		max      float64
		width    int
		expected int
	}{
		{name: "zero value", value: 0, max: 10, width: 30, expected: 0},
		{name: "full scale", value: 10, max: 10, width: 30, expected: 30},
		{name: "half scale", value: 5, max: 10, width: 30, expected: 15},
		{name: "tiny value gets one cell", value: 0.01, max: 100, width: 30, expected: 1},
		{name: "zero width", value: 5, max: 10, width: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleWidth(tt.value, tt.max, tt.width); got != tt.expected {
				t.Errorf("ScaleWidth(%v, %v, %d) = %d, want %d", tt.value, tt.max, tt.width, got, tt.expected)
			}
		})
	}
}
