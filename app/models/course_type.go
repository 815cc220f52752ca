package models

import (
	"fmt"
	"time"
)

// CourseType represents a row in the course_types table
type CourseType struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	Color        *string   `json:"color,omitempty"`
	TextColor    *string   `json:"text_color,omitempty"`
	Priority     *int      `json:"priority,omitempty"`
}

// CourseTypeInsert is the writable shape for creating a course type.
// Server-assigned fields stay nil so the backend fills them in.
type CourseTypeInsert struct {
	ID           *string `json:"id,omitempty"`
	Name         string  `json:"name"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Color        *string `json:"color,omitempty"`
	TextColor    *string `json:"text_color,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
}

// CourseTypeUpdate is the partial shape for updating a course type. A nil
// field is omitted from the request body and leaves the stored value alone.
type CourseTypeUpdate struct {
	Name         *string `json:"name,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Color        *string `json:"color,omitempty"`
	TextColor    *string `json:"text_color,omitempty"`
	Priority     *int    `json:"priority,omitempty"`
}

// Validate checks the insert shape before it is sent to the backend.
func (in *CourseTypeInsert) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Validate checks the update shape before it is sent to the backend.
func (u *CourseTypeUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}
