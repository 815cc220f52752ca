package models

import (
	"fmt"
	"strconv"
	"time"
)

// DayOfWeek is the integer day code used by the schedules table, Monday = 1
// through Sunday = 7.
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DaysOfWeek maps day codes to their display names, indexed by code - 1.
var DaysOfWeek = [7]string{
	"Lundi",
	"Mardi",
	"Mercredi",
	"Jeudi",
	"Vendredi",
	"Samedi",
	"Dimanche",
}

// Valid reports whether the day code is inside the {1..7} domain.
func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Sunday
}

// QueryValue renders the day code the way PostgREST filter params expect it.
func (d DayOfWeek) QueryValue() string {
	return strconv.Itoa(int(d))
}

func (d DayOfWeek) String() string {
	if !d.Valid() {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return DaysOfWeek[d-1]
}

// Schedule represents a row in the schedules table
type Schedule struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CourseTypeID string    `json:"course_type_id"`
	Day          DayOfWeek `json:"day"`
	StartHour    string    `json:"start_hour"`
	EndHour      string    `json:"end_hour"`
	Priority     int       `json:"priority"`
}

// ScheduleInsert is the writable shape for creating a schedule slot.
type ScheduleInsert struct {
	ID           *string   `json:"id,omitempty"`
	CourseTypeID string    `json:"course_type_id"`
	Day          DayOfWeek `json:"day"`
	StartHour    string    `json:"start_hour"`
	EndHour      string    `json:"end_hour"`
	Priority     *int      `json:"priority,omitempty"`
}

// ScheduleUpdate is the partial shape for updating a schedule slot. A nil
// field is omitted from the request body, so the stored value (including
// course_type_id) survives unless explicitly overwritten.
type ScheduleUpdate struct {
	CourseTypeID *string    `json:"course_type_id,omitempty"`
	Day          *DayOfWeek `json:"day,omitempty"`
	StartHour    *string    `json:"start_hour,omitempty"`
	EndHour      *string    `json:"end_hour,omitempty"`
	Priority     *int       `json:"priority,omitempty"`
}

// ScheduleCourseType is the subset of the parent course type embedded in
// the joined schedule projection.
type ScheduleCourseType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Color     *string `json:"color,omitempty"`
	TextColor *string `json:"text_color,omitempty"`
	Priority  *int    `json:"priority,omitempty"`
}

// ScheduleWithCourseType is the read-only join projection used for display.
// It is never written back to the backend.
type ScheduleWithCourseType struct {
	Schedule
	CourseType ScheduleCourseType `json:"course_types"`
}

// DayName returns the display name for the slot's day.
func (s *Schedule) DayName() string {
	return s.Day.String()
}

// Validate checks the insert shape before it is sent to the backend. The
// database enforces the foreign key; day and hour ordering are checked here
// so bad input never leaves the process.
func (in *ScheduleInsert) Validate() error {
	if in.CourseTypeID == "" {
		return fmt.Errorf("course_type_id is required")
	}
	if !in.Day.Valid() {
		return fmt.Errorf("day must be between 1 and 7, got %d", in.Day)
	}
	return validateHours(in.StartHour, in.EndHour)
}

// Validate checks the update shape. Only fields that are present are
// validated; hour ordering is only checked when both hours are supplied.
func (u *ScheduleUpdate) Validate() error {
	if u.CourseTypeID != nil && *u.CourseTypeID == "" {
		return fmt.Errorf("course_type_id cannot be empty")
	}
	if u.Day != nil && !u.Day.Valid() {
		return fmt.Errorf("day must be between 1 and 7, got %d", *u.Day)
	}
	if u.StartHour != nil {
		if _, err := parseHour(*u.StartHour); err != nil {
			return err
		}
	}
	if u.EndHour != nil {
		if _, err := parseHour(*u.EndHour); err != nil {
			return err
		}
	}
	if u.StartHour != nil && u.EndHour != nil {
		return validateHours(*u.StartHour, *u.EndHour)
	}
	return nil
}

func validateHours(start, end string) error {
	from, err := parseHour(start)
	if err != nil {
		return err
	}
	to, err := parseHour(end)
	if err != nil {
		return err
	}
	if !from.Before(to) {
		return fmt.Errorf("start_hour %q must precede end_hour %q", start, end)
	}
	return nil
}

func parseHour(value string) (time.Time, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
}
