package todos

import (
	"fmt"
	"time"
)

var (
	validCategories = map[string]bool{"work": true, "personal": true, "shopping": true, "health": true, "other": true}
	validPriorities = map[string]bool{"low": true, "medium": true, "high": true, "urgent": true}
)

// Todo is the stored task record. CompletedAt is non-nil exactly when
// Completed is true; Update and ToggleComplete maintain that invariant.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// Input carries the writable fields of a todo. Nil pointers mean
// "not provided" so partial updates leave existing values alone.
type Input struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Priority    *string   `json:"priority"`
	Completed   *bool     `json:"completed"`
	Tags        *[]string `json:"tags"`
}

// Validate checks the provided fields: title 1-200 chars, description up
// to 1000, closed category and priority enums.
// requireTitle is set for create, where a title must be present.
func (in *Input) Validate(requireTitle bool) []string {
	var details []string

	if in.Title != nil {
		if n := len(*in.Title); n < 1 || n > 200 {
			details = append(details, "title must be between 1 and 200 characters")
		}
	} else if requireTitle {
		details = append(details, "title is required")
	}

	if in.Description != nil && len(*in.Description) > 1000 {
		details = append(details, "description must be at most 1000 characters")
	}

	if in.Category != nil && !validCategories[*in.Category] {
		details = append(details, fmt.Sprintf("invalid category %q", *in.Category))
	}

	if in.Priority != nil && !validPriorities[*in.Priority] {
		details = append(details, fmt.Sprintf("invalid priority %q", *in.Priority))
	}

	return details
}
