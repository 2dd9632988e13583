package endpoint

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ariebrainware/health-tracker/conditions"
	"github.com/ariebrainware/health-tracker/middleware"
	"github.com/ariebrainware/health-tracker/store"
	"github.com/ariebrainware/health-tracker/util"
)

const testConditionDataset = `[
  {
    "name": "Diabetes",
    "symptoms": ["Increased thirst", "Fatigue"],
    "prevention": ["Exercise regularly"],
    "treatment": "Insulin therapy",
    "image": "images/diabetes.png"
  },
  {
    "name": "Thyroid",
    "symptoms": ["fatigue", "weight gain"],
    "prevention": ["diet"],
    "treatment": "medication"
  },
  {
    "name": "High Blood Pressure",
    "symptoms": ["Headaches"],
    "prevention": ["Reduce salt intake"],
    "treatment": "Antihypertensive medication"
  }
]`

// setupEndpointTest returns a Gin engine wired with a fresh record store and
// a condition client backed by a stub dataset server.
func setupEndpointTest(t *testing.T) (*gin.Engine, *store.RecordStore) {
	t.Helper()
	t.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testConditionDataset))
	}))
	t.Cleanup(srv.Close)

	s := store.NewRecordStore()
	client := conditions.NewClient(srv.URL, time.Minute)

	r := gin.New()
	r.Use(middleware.StoreMiddleware(s))
	r.Use(middleware.ConditionsMiddleware(client))
	registerRoutes(r)
	return r, s
}

// setupBrokenDatasetTest wires the condition client to an upstream that
// always fails, for the fetch-error paths.
func setupBrokenDatasetTest(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	r := gin.New()
	r.Use(middleware.StoreMiddleware(store.NewRecordStore()))
	r.Use(middleware.ConditionsMiddleware(conditions.NewClient(srv.URL, time.Minute)))
	registerRoutes(r)
	return r
}

// setupEmptyDatasetTest wires the condition client to an upstream that
// loads fine but contains no entries, so not-found hints must fall back to
// the enumeration.
func setupEmptyDatasetTest(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("APPENV", "test")
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	r := gin.New()
	r.Use(middleware.StoreMiddleware(store.NewRecordStore()))
	r.Use(middleware.ConditionsMiddleware(conditions.NewClient(srv.URL, time.Minute)))
	registerRoutes(r)
	return r
}

// newBareRouter registers the routes with no store or conditions client
// injected, for the missing-dependency paths.
func newBareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r)
	return r
}

func registerRoutes(r *gin.Engine) {
	r.GET("/patient", ListPatients)
	r.POST("/patient", CreatePatient)
	r.DELETE("/patient", ClearPatients)
	r.GET("/report", GetReport)
	r.GET("/condition", ListConditions)
	r.GET("/condition/lookup", LookupCondition)
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) util.APIResponse {
	t.Helper()
	var resp util.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return resp
}

// fieldErrorsFrom extracts the per-field validation flags from a response.
func fieldErrorsFrom(t *testing.T, resp util.APIResponse) map[string]interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %T", resp.Data)
	}
	fields, ok := data["field_errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected field_errors map, got %T", data["field_errors"])
	}
	return fields
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, w.Code)
}
