package coursetypes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vinch/crossfitchapelle/app/config"
	"github.com/vinch/crossfitchapelle/app/models"
	"github.com/vinch/crossfitchapelle/app/routes/auth"
)

func signedToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@crossfitchapelle.be",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// fakeRest stands in for the PostgREST data API.
type fakeRest struct {
	*httptest.Server
	requests []string
}

func newFakeRest(t *testing.T) *fakeRest {
	t.Helper()
	f := &fakeRest{}
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/v1/course_types", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r.Method)
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[
				{"id": "ct-1", "created_at": "2024-01-02T10:00:00Z", "updated_at": "2024-01-02T10:00:00Z", "name": "CrossFit", "display_order": 1},
				{"id": "ct-2", "created_at": "2024-01-02T10:00:00Z", "updated_at": "2024-01-02T10:00:00Z", "name": "Open Gym", "display_order": 2}
			]`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": "ct-3", "created_at": "2024-01-02T10:00:00Z", "updated_at": "2024-01-02T10:00:00Z", "name": "Gymnastique", "display_order": 3}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func newTestApp(url string) *fiber.App {
	cfg := &config.Config{
		SupabaseURL:     url,
		SupabaseAnonKey: "test-anon-key",
		SiteURL:         "http://localhost:3000",
		ListenAddr:      ":3000",
	}
	app := fiber.New()
	app.Use(auth.WithBackend(cfg))
	SetupCourseTypesRoutes(app)
	return app
}

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: signedToken(t)})
	return req
}

func TestGetCourseTypesAPI(t *testing.T) {
	rest := newFakeRest(t)
	app := newTestApp(rest.URL)

	resp, err := app.Test(authedRequest(t, "GET", "/api/course-types/", ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var rows []models.CourseType
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Name != "CrossFit" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}

func TestCreateCourseTypeAPI(t *testing.T) {
	rest := newFakeRest(t)
	app := newTestApp(rest.URL)

	resp, err := app.Test(authedRequest(t, "POST", "/api/course-types/", `{"name": "Gymnastique", "display_order": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
}

func TestCreateCourseTypeAPIRejectsMissingName(t *testing.T) {
	rest := newFakeRest(t)
	app := newTestApp(rest.URL)

	resp, err := app.Test(authedRequest(t, "POST", "/api/course-types/", `{"display_order": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	// Invalid input never reaches the backend.
	for _, m := range rest.requests {
		if m == http.MethodPost {
			t.Error("invalid insert was sent to the backend")
		}
	}
}

func TestCourseTypesAPIRequiresSession(t *testing.T) {
	rest := newFakeRest(t)
	app := newTestApp(rest.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/course-types/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if len(rest.requests) != 0 {
		t.Error("unauthenticated request reached the backend")
	}
}
