package board

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "single tag",
			input:    "go",
			expected: []string{"go"},
		},
		{
			name:     "trims whitespace",
			input:    "  go ,  web  ",
			expected: []string{"go", "web"},
		},
		{
			name:     "drops empty entries",
			input:    "go,,web,",
			expected: []string{"go", "web"},
		},
		{
			name:     "collapses duplicates keeping first-seen order",
			input:    "a, a, b",
			expected: []string{"a", "b"},
		},
		{
			name:     "duplicates after trimming",
			input:    "a,  a ,b, a",
			expected: []string{"a", "b"},
		},
		{
			name:     "only separators",
			input:    ", , ,",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTags_Idempotent(t *testing.T) {
	inputs := []string{"a, a, b", " x ,y,, z ", "go", ""}
	for _, input := range inputs {
		once := ParseTags(input)
		twice := ParseTags(JoinTags(once))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("ParseTags not idempotent for %q: first %v, second %v", input, once, twice)
		}
	}
}

func TestJoinTags(t *testing.T) {
	got := JoinTags([]string{"go", "web"})
	if got != "go, web" {
		t.Errorf("JoinTags() = %q, want %q", got, "go, web")
	}
	if JoinTags(nil) != "" {
		t.Errorf("JoinTags(nil) = %q, want empty", JoinTags(nil))
	}
}
