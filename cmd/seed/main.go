package main

import (
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/supabase-community/postgrest-go"

	"github.com/vinch/crossfitchapelle/app/models"
)

// Seeds the default course types through PostgREST. Needs the service-role
// key since it runs outside any user session.
func main() {
	_ = godotenv.Load()

	url := os.Getenv("PUBLIC_SUPABASE_URL")
	key := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")
	if url == "" || key == "" {
		log.Fatal("PUBLIC_SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY are required")
	}

	rest := postgrest.NewClient(url+"/rest/v1", "public", map[string]string{
		"apikey": key,
	}).SetAuthToken(key)

	defaults := []models.CourseTypeInsert{
		{Name: "CrossFit", DisplayOrder: intPtr(1)},
		{Name: "Haltérophilie", DisplayOrder: intPtr(2)},
		{Name: "Gymnastique", DisplayOrder: intPtr(3)},
		{Name: "Open Gym", DisplayOrder: intPtr(4)},
	}

	var rows []models.CourseType
	_, err := rest.From("course_types").
		Insert(defaults, true, "name", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Display Order"})
	for _, row := range rows {
		table.Append([]string{row.ID, row.Name, strconv.Itoa(row.DisplayOrder)})
	}
	table.Render()

	color.Green("Seeded %d course types", len(rows))
}

func intPtr(v int) *int {
	return &v
}
