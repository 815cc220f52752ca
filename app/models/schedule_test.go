package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDayOfWeekValid(t *testing.T) {
	tests := []struct {
		day  DayOfWeek
		want bool
	}{
		{0, false},
		{Monday, true},
		{Thursday, true},
		{Sunday, true},
		{8, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := tt.day.Valid(); got != tt.want {
			t.Errorf("DayOfWeek(%d).Valid() = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestDayOfWeekString(t *testing.T) {
	if got := Monday.String(); got != "Lundi" {
		t.Errorf("Monday.String() = %q, want Lundi", got)
	}
	if got := Sunday.String(); got != "Dimanche" {
		t.Errorf("Sunday.String() = %q, want Dimanche", got)
	}
}

func TestScheduleInsertValidate(t *testing.T) {
	valid := ScheduleInsert{
		CourseTypeID: "ct-1",
		Day:          Wednesday,
		StartHour:    "09:00",
		EndHour:      "10:00",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid insert rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ScheduleInsert)
	}{
		{"missing course type", func(in *ScheduleInsert) { in.CourseTypeID = "" }},
		{"day zero", func(in *ScheduleInsert) { in.Day = 0 }},
		{"day eight", func(in *ScheduleInsert) { in.Day = 8 }},
		{"start after end", func(in *ScheduleInsert) { in.StartHour = "11:00" }},
		{"start equals end", func(in *ScheduleInsert) { in.StartHour = "10:00" }},
		{"garbage hour", func(in *ScheduleInsert) { in.StartHour = "morning" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := in.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestScheduleUpdateValidate(t *testing.T) {
	day := Friday
	start := "18:30"
	if err := (&ScheduleUpdate{Day: &day, StartHour: &start}).Validate(); err != nil {
		t.Fatalf("partial update rejected: %v", err)
	}

	bad := DayOfWeek(9)
	if err := (&ScheduleUpdate{Day: &bad}).Validate(); err == nil {
		t.Error("day 9 accepted")
	}

	empty := ""
	if err := (&ScheduleUpdate{CourseTypeID: &empty}).Validate(); err == nil {
		t.Error("empty course_type_id accepted")
	}

	from, to := "12:00", "11:00"
	if err := (&ScheduleUpdate{StartHour: &from, EndHour: &to}).Validate(); err == nil {
		t.Error("inverted hours accepted")
	}
}

// An update that does not mention course_type_id must not serialize the
// field at all, so the stored value survives the partial write untouched.
func TestScheduleUpdatePreservesCourseType(t *testing.T) {
	day := Tuesday
	body, err := json.Marshal(&ScheduleUpdate{Day: &day})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(body), "course_type_id") {
		t.Errorf("update body leaks course_type_id: %s", body)
	}

	id := "ct-2"
	body, err = json.Marshal(&ScheduleUpdate{CourseTypeID: &id})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"course_type_id":"ct-2"`) {
		t.Errorf("explicit course_type_id missing from body: %s", body)
	}
}

func TestCourseTypeInsertValidate(t *testing.T) {
	if err := (&CourseTypeInsert{Name: "CrossFit"}).Validate(); err != nil {
		t.Fatalf("valid insert rejected: %v", err)
	}
	if err := (&CourseTypeInsert{}).Validate(); err == nil {
		t.Error("missing name accepted")
	}
}
