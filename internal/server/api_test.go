package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forensilink/backend/internal/graph"
	mid "github.com/forensilink/backend/internal/server/middleware"
	"github.com/forensilink/backend/internal/store/memory"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	db := memory.NewStore()
	app := &mid.App{
		Cases:       db,
		Entities:    db,
		Connections: db,
		Graph:       graph.NewAssembler(db, db, db),
	}
	e.Use(mid.AppContextMiddleware(app))
	RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealthRoute(t *testing.T) {
	e := newTestServer()

	rec, body := doJSON(t, e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestCaseLifecycle(t *testing.T) {
	e := newTestServer()

	rec, body := doJSON(t, e, http.MethodPost, "/api/cases",
		`{"id":"2025-047-VA","title":"Varma Network Analysis","crime_type":"Conspiracy","officer_id":"IO-2847"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := body["case"].(map[string]any)
	assert.Equal(t, "active", created["status"])

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodPost, "/api/cases",
			`{"id":"2025-047-VA","title":"Again"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing title is a bad request", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodPost, "/api/cases", `{"id":"2025-048"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get returns case with children", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodGet, "/api/cases/2025-047-VA", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, body["case"])
		assert.NotNil(t, body["entities"])
		assert.NotNil(t, body["connections"])
	})

	t.Run("partial update leaves omitted fields alone", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPut, "/api/cases/2025-047-VA",
			`{"status":"closed"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		updated := body["case"].(map[string]any)
		assert.Equal(t, "closed", updated["status"])
		assert.Equal(t, "Varma Network Analysis", updated["title"])
	})

	t.Run("update of unknown case is not found", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodPut, "/api/cases/ghost", `{"status":"closed"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEntityAndConnectionRoutes(t *testing.T) {
	e := newTestServer()

	rec, _ := doJSON(t, e, http.MethodPost, "/api/cases",
		`{"id":"c1","title":"Network Analysis"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("create entity with defaults", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPost, "/api/cases/c1/entities",
			`{"id":"arjun","label":"Arjun Varma","type":"person"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		entity := body["entity"].(map[string]any)
		assert.Equal(t, float64(50), entity["size"])
	})

	t.Run("entity on unknown case is not found", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodPost, "/api/cases/ghost/entities",
			`{"id":"x","label":"X","type":"person"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad timestamp is a bad request", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodPost, "/api/cases/c1/entities",
			`{"id":"x","label":"X","type":"person","timestamp":"whenever"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create connection with default weight", func(t *testing.T) {
		rec, body := doJSON(t, e, http.MethodPost, "/api/cases/c1/connections",
			`{"id":"e1","source":"arjun","target":"priya","type":"Signal Chat"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		conn := body["connection"].(map[string]any)
		assert.Equal(t, float64(1), conn["weight"])
	})

	t.Run("listings return what was created", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodGet, "/api/cases/c1/entities", "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(t, e, http.MethodGet, "/api/cases/c1/connections", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGraphRoute(t *testing.T) {
	e := newTestServer()

	rec, _ := doJSON(t, e, http.MethodPost, "/api/cases", `{"id":"c1","title":"Graph Case"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = doJSON(t, e, http.MethodPost, "/api/cases/c1/entities",
		`{"id":"a","label":"A","type":"person"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = doJSON(t, e, http.MethodPost, "/api/cases/c1/connections",
		`{"id":"e1","source":"a","target":"dangling","type":"SMS"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body := doJSON(t, e, http.MethodGet, "/api/cases/c1/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["nodes"], 1)
	assert.Len(t, body["edges"], 1)

	t.Run("unknown case is not found", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodGet, "/api/cases/ghost/graph", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSearchRoute(t *testing.T) {
	e := newTestServer()

	for _, payload := range []string{
		`{"id":"a","title":"Theft Downtown","status":"closed","crime_type":"Theft","officer_id":"IO-1"}`,
		`{"id":"b","title":"Fraud Uptown","crime_type":"Fraud","officer_id":"IO-2"}`,
		`{"id":"c","title":"Fraud Harbor","crime_type":"Fraud","officer_id":"IO-1"}`,
	} {
		rec, _ := doJSON(t, e, http.MethodPost, "/api/cases", payload)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	listCases := func(t *testing.T, path string) []any {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var found []any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
		return found
	}

	t.Run("criteria compose conjunctively", func(t *testing.T) {
		found := listCases(t, "/api/search/cases?crime_type=Fraud&officer_id=IO-1")
		require.Len(t, found, 1)
		assert.Equal(t, "c", found[0].(map[string]any)["id"])
	})

	t.Run("title search is case-insensitive", func(t *testing.T) {
		found := listCases(t, "/api/search/cases?search=HARBOR")
		require.Len(t, found, 1)
	})

	t.Run("no criteria returns everything", func(t *testing.T) {
		found := listCases(t, "/api/search/cases")
		assert.Len(t, found, 3)
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		found := listCases(t, "/api/search/cases?status=archived")
		assert.Len(t, found, 0)
	})

	t.Run("list route takes the same filters", func(t *testing.T) {
		found := listCases(t, "/api/cases?status=closed")
		require.Len(t, found, 1)
		assert.Equal(t, "a", found[0].(map[string]any)["id"])
	})
}

func TestDeleteCascadesOverHTTP(t *testing.T) {
	e := newTestServer()

	rec, _ := doJSON(t, e, http.MethodPost, "/api/cases", `{"id":"c1","title":"Doomed"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = doJSON(t, e, http.MethodPost, "/api/cases/c1/entities",
		`{"id":"a","label":"A","type":"person"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doJSON(t, e, http.MethodDelete, "/api/cases/c1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, e, http.MethodGet, "/api/cases/c1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	t.Run("second delete is not found", func(t *testing.T) {
		rec, _ := doJSON(t, e, http.MethodDelete, "/api/cases/c1", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
