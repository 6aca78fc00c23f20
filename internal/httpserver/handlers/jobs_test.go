package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jobpulse/pulse/internal/catalog"
	"github.com/jobpulse/pulse/internal/domain"
	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/logger"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
)

func testDeps(t *testing.T, jobs []domain.Job) (deps.Deps, *redisstore.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cat := catalog.New()
	cat.Replace(jobs)

	d := deps.Deps{
		Logger:      logger.NewNop(),
		StartTime:   time.Now(),
		TimeNow:     time.Now,
		RedisClient: client,
		Catalog:     cat,
		Validate:    validator.New(),
	}
	return d, redisstore.NewStore(client)
}

func fixtureJobs() []domain.Job {
	return []domain.Job{
		{
			ID:            "frontend-1",
			Title:         "Frontend Developer",
			Company:       "Acme",
			Location:      "Bangalore",
			Mode:          domain.ModeRemote,
			Experience:    "1-3",
			Description:   "React work",
			Skills:        []string{"React"},
			SalaryRange:   "90k-120k",
			Source:        "LinkedIn",
			PostedDaysAgo: 1,
		},
		{
			ID:            "backend-1",
			Title:         "Backend Engineer",
			Company:       "Globex",
			Location:      "Pune",
			Mode:          domain.ModeOnsite,
			Experience:    "3-5",
			Description:   "Go services",
			Skills:        []string{"Go"},
			SalaryRange:   "30-40 LPA",
			Source:        "Naukri",
			PostedDaysAgo: 6,
		},
	}
}

func newRouter(d deps.Deps) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/jobs", ListJobs(d))
	r.Get("/api/jobs/{id}", GetJob(d))
	r.Put("/api/jobs/{id}/status", UpdateStatus(d))
	r.Get("/api/status/history", StatusHistory(d))
	r.Put("/api/jobs/{id}/saved", SaveJob(d))
	r.Get("/api/saved", ListSaved(d))
	return r
}

func TestListJobsDefaults(t *testing.T) {
	d, _ := testDeps(t, fixtureJobs())
	r := newRouter(d)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body jobListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 2)
	require.False(t, body.HasPreferences)
	require.Equal(t, domain.DefaultMinMatchScore, body.MinMatchScore)
	// Catalog order preserved when no sort key is given.
	require.Equal(t, "frontend-1", body.Jobs[0].ID)
	require.Equal(t, domain.StatusNotApplied, body.Jobs[0].Status)
}

func TestListJobsFilterAndSort(t *testing.T) {
	d, _ := testDeps(t, fixtureJobs())
	r := newRouter(d)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?mode=Onsite", nil))
	var body jobListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 1)
	require.Equal(t, "backend-1", body.Jobs[0].ID)

	// Salary sort: 90k annual converts below the raw 30 LPA figure.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?sort=salary", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "backend-1", body.Jobs[0].ID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs?sort=recency", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "frontend-1", body.Jobs[0].ID)
}

func TestGetJobNotFound(t *testing.T) {
	d, _ := testDeps(t, fixtureJobs())
	r := newRouter(d)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusAndHistory(t *testing.T) {
	d, _ := testDeps(t, fixtureJobs())
	r := newRouter(d)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/jobs/frontend-1/status",
		strings.NewReader(`{"status":"Applied"}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/jobs/frontend-1/status",
		strings.NewReader(`{"status":"Ghosted"}`))
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		History []historyView `json:"history"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.History, 1)
	require.Equal(t, "frontend-1", body.History[0].JobID)
	require.Equal(t, domain.StatusApplied, body.History[0].Status)
	require.Equal(t, "Frontend Developer", body.History[0].Title)
}

func TestSavedFlow(t *testing.T) {
	d, _ := testDeps(t, fixtureJobs())
	r := newRouter(d)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/jobs/backend-1/saved", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/saved", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body jobListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 1)
	require.Equal(t, "backend-1", body.Jobs[0].ID)
	require.True(t, body.Jobs[0].Saved)
}
