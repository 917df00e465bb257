package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/internal/handlers"
	"github.com/valeriaulyamaeva/personal-tracker/internal/routes"
	"github.com/valeriaulyamaeva/personal-tracker/web"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func newRouter(t *testing.T, db database.DBTX) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	h := handlers.New(db, log).WithClock(func() time.Time { return fixedNow })
	return routes.SetupRouter(h, log, tmpl)
}

func post(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// Invalid input is rejected before the store is touched, so a nil store is
// enough here.
func TestInvalidInputIsRejected(t *testing.T) {
	r := newRouter(t, nil)

	cases := []struct {
		path   string
		values url.Values
		field  string
	}{
		{"/add-transaction", url.Values{"date": {"2024-05-01"}, "type": {"income"}, "amount": {"abc"}}, "amount"},
		{"/add-transaction", url.Values{"date": {"yesterday"}, "type": {"income"}, "amount": {"1"}}, "date"},
		{"/add-transaction", url.Values{"date": {"2024-05-01"}, "type": {"gift"}, "amount": {"1"}}, "type"},
		{"/add-category", url.Values{"name": {""}, "type": {"expense"}}, "name"},
		{"/add-debt", url.Values{"name": {"Car"}, "amount": {"100"}, "due_date": {"31/12/2024"}}, "due_date"},
		{"/add-fixed-expense", url.Values{"name": {"Rent"}, "amount": {"500"}, "pay_date": {"40"}}, "pay_date"},
		{"/set-initial-balance", url.Values{"amount": {""}}, "amount"},
		{"/add-workout-plan", url.Values{"name": {"Morning"}}, "type"},
		{"/add-workout-log", url.Values{"date": {"2024-05-01"}, "type": {"cardio"}, "sets": {"three"}}, "sets"},
		{"/add-stock", url.Values{"symbol": {"ACME"}, "name": {"Acme"}, "quantity": {"10"}, "buy_price": {"5"}}, "buy_date"},
		{"/update-stock-price", url.Values{"id": {"x"}, "current_price": {"5"}}, "id"},
		{"/add-goal", url.Values{"title": {"Read"}, "type": {"hourly"}}, "type"},
		{"/add-goal", url.Values{"title": {"Read"}, "type": {"daily"}, "progress": {"150"}}, "progress"},
		{"/update-goal-progress", url.Values{"id": {"1"}, "progress": {"-1"}}, "progress"},
		{"/delete-goal", url.Values{"id": {"abc"}}, "id"},
		{"/add-workout-log", url.Values{"date": {"2024-05-01"}, "type": {"cardio"}, "duration": {"3000000000"}}, "duration"},
	}
	for _, tc := range cases {
		t.Run(tc.path+"/"+tc.field, func(t *testing.T) {
			w := post(r, tc.path, tc.values)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tc.field+":")
		})
	}
}

// Ids that no row can carry redirect like any other unknown id; the nil
// store shows the handlers never reach it.
func TestIDWithoutRowRedirects(t *testing.T) {
	r := newRouter(t, nil)

	cases := []struct {
		path     string
		values   url.Values
		location string
	}{
		{"/delete-goal", url.Values{"id": {"0"}}, "/goals"},
		{"/delete-goal", url.Values{"id": {"-5"}}, "/goals"},
		{"/delete-goal", url.Values{"id": {"3000000000"}}, "/goals"},
		{"/update-goal-progress", url.Values{"id": {"0"}, "progress": {"50"}}, "/goals"},
		{"/update-goal-progress", url.Values{"id": {"3000000000"}, "progress": {"100"}}, "/goals"},
		{"/update-stock-price", url.Values{"id": {"-1"}, "current_price": {"5"}}, "/stocks"},
		{"/update-stock-price", url.Values{"id": {"3000000000"}, "current_price": {""}}, "/stocks"},
	}
	for _, tc := range cases {
		t.Run(tc.path+"/"+tc.values.Get("id"), func(t *testing.T) {
			w := post(r, tc.path, tc.values)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}

func TestPingWithoutStore(t *testing.T) {
	r := newRouter(t, nil)
	w := get(r, "/ping")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	r := newRouter(t, nil)
	w := get(r, "/static/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE "+strings.Join(database.Tables, ", ")+" RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	return pool
}
