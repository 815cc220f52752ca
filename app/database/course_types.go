package database

import (
	"github.com/supabase-community/postgrest-go"

	"github.com/vinch/crossfitchapelle/app/models"
	"github.com/vinch/crossfitchapelle/app/supabase"
)

func GetAllCourseTypes(client *supabase.Client) ([]*models.CourseType, error) {
	var rows []*models.CourseType
	_, err := client.From("course_types").
		Select("*", "", false).
		Order("display_order", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func GetCourseTypeByID(client *supabase.Client, id string) (*models.CourseType, error) {
	var row models.CourseType
	_, err := client.From("course_types").
		Select("*", "", false).
		Eq("id", id).
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func CreateCourseType(client *supabase.Client, in *models.CourseTypeInsert) (*models.CourseType, error) {
	var row models.CourseType
	_, err := client.From("course_types").
		Insert(in, false, "", "representation", "").
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func UpdateCourseType(client *supabase.Client, id string, in *models.CourseTypeUpdate) (*models.CourseType, error) {
	var row models.CourseType
	_, err := client.From("course_types").
		Update(in, "representation", "").
		Eq("id", id).
		Single().
		ExecuteTo(&row)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func DeleteCourseType(client *supabase.Client, id string) error {
	_, _, err := client.From("course_types").
		Delete("", "").
		Eq("id", id).
		Execute()
	return err
}
