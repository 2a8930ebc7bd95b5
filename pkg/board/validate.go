package board

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Limits enforced identically on the client and (assumed) on the server.
const (
	MaxTitleLen = 80
	MaxBodyLen  = 2000
	MaxTags     = 5
	MaxTagLen   = 24
)

// ForbiddenWords is the static list of substrings a post body must not
// contain, matched case-insensitively. Shared by form validation and the
// mock server so the rule lives in exactly one place.
var ForbiddenWords = []string{"캄보디아", "프놈펜", "불법체류", "텔레그램"}

// ValidationError is a client-detected, pre-submit failure. The user can
// edit the offending field and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FindForbiddenWords returns every forbidden term the body contains,
// ignoring letter case.
func FindForbiddenWords(body string) []string {
	lower := strings.ToLower(body)
	var found []string
	for _, w := range ForbiddenWords {
		if strings.Contains(lower, strings.ToLower(w)) {
			found = append(found, w)
		}
	}
	return found
}

// Validate checks raw form values in a fixed order, short-circuiting on the
// first failure, and returns the normalized submission payload on success:
// trimmed title and body, canonical category, deduplicated tags.
func Validate(title, body string, category Category, tagsInput string) (PostInput, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return PostInput{}, &ValidationError{Field: "title", Message: "title is required"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return PostInput{}, &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLen),
		}
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return PostInput{}, &ValidationError{Field: "body", Message: "body is required"}
	}
	if utf8.RuneCountInString(body) > MaxBodyLen {
		return PostInput{}, &ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("body must be at most %d characters", MaxBodyLen),
		}
	}

	if found := FindForbiddenWords(body); len(found) > 0 {
		return PostInput{}, &ValidationError{
			Field:   "body",
			Message: "body contains forbidden words: " + strings.Join(found, ", "),
		}
	}

	if _, err := ParseCategory(string(category)); err != nil {
		return PostInput{}, &ValidationError{Field: "category", Message: err.Error()}
	}

	tags := ParseTags(tagsInput)
	if len(tags) > MaxTags {
		return PostInput{}, &ValidationError{
			Field:   "tags",
			Message: fmt.Sprintf("at most %d tags are allowed", MaxTags),
		}
	}
	for _, t := range tags {
		if utf8.RuneCountInString(t) > MaxTagLen {
			return PostInput{}, &ValidationError{
				Field:   "tags",
				Message: fmt.Sprintf("tag %q exceeds %d characters", t, MaxTagLen),
			}
		}
	}

	return PostInput{Title: title, Body: body, Category: category, Tags: tags}, nil
}
