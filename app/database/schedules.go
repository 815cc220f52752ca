package database

import (
	"github.com/supabase-community/postgrest-go"

	"github.com/vinch/crossfitchapelle/app/models"
	"github.com/vinch/crossfitchapelle/app/supabase"
)

// scheduleJoin pulls each slot together with the display subset of its
// parent course type in a single query.
const scheduleJoin = "*,course_types(id,name,color,text_color,priority)"

// GetWeekSchedule returns every slot with its course type, ordered by day
// then start hour, ready to render as a weekly grid.
func GetWeekSchedule(client *supabase.Client) ([]*models.ScheduleWithCourseType, error) {
	var rows []*models.ScheduleWithCourseType
	_, err := client.From("schedules").
		Select(scheduleJoin, "", false).
		Order("day", &postgrest.OrderOpts{Ascending: true}).
		Order("start_hour", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func GetSchedulesByDay(client *supabase.Client, day models.DayOfWeek) ([]*models.ScheduleWithCourseType, error) {
	var rows []*models.ScheduleWithCourseType
	_, err := client.From("schedules").
		Select(scheduleJoin, "", false).
		Eq("day", day.QueryValue()).
		Order("start_hour", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func GetScheduleByID(client *supabase.Client, id string) (*models.Schedule, error) {
	var row models.Schedule
	_, err := client.From("schedules").
		Select("*", "", false).
		Eq("id", id).
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func CreateSchedule(client *supabase.Client, in *models.ScheduleInsert) (*models.Schedule, error) {
	var row models.Schedule
	_, err := client.From("schedules").
		Insert(in, false, "", "representation", "").
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func UpdateSchedule(client *supabase.Client, id string, in *models.ScheduleUpdate) (*models.Schedule, error) {
	var row models.Schedule
	_, err := client.From("schedules").
		Update(in, "representation", "").
		Eq("id", id).
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func DeleteSchedule(client *supabase.Client, id string) error {
	_, _, err := client.From("schedules").
		Delete("", "").
		Eq("id", id).
		Execute()
	return err
}
