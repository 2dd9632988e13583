package endpoint

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariebrainware/health-tracker/model"
)

func reportFrom(t *testing.T, body []byte) model.Report {
	t.Helper()
	var resp struct {
		Success bool         `json:"success"`
		Data    model.Report `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode report response: %v", err)
	}
	return resp.Data
}

func TestGetReportEmptyState(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := performJSON(r, http.MethodGet, "/report", nil)
	assertStatus(t, w, http.StatusOK)

	report := reportFrom(t, w.Body.Bytes())
	assert.True(t, report.Empty)
	assert.NotEmpty(t, report.Message)
	assert.Zero(t, report.Total)
}

func TestGetReportSinglePatientScenario(t *testing.T) {
	r, _ := setupEndpointTest(t)

	performJSON(r, http.MethodPost, "/patient", map[string]interface{}{
		"name":      "Ana",
		"gender":    "Female",
		"age":       34,
		"condition": "Diabetes",
	})

	w := performJSON(r, http.MethodGet, "/report", nil)
	assertStatus(t, w, http.StatusOK)

	report := reportFrom(t, w.Body.Bytes())
	assert.False(t, report.Empty)
	assert.Equal(t, 1, report.Total)

	for _, bar := range report.Bars {
		if bar.Condition == "Diabetes" {
			assert.Equal(t, 1, bar.Count)
			assert.Equal(t, 100, bar.WidthPct)
		} else {
			assert.Equal(t, 0, bar.Count)
			assert.Equal(t, 0, bar.WidthPct)
		}
	}

	for _, g := range report.Genders {
		switch g.Gender {
		case "Female":
			assert.Equal(t, 1, g.Counts["Diabetes"])
			assert.Equal(t, 0, g.Counts["Thyroid"])
			assert.Equal(t, 0, g.Counts["High Blood Pressure"])
		case "Male":
			for _, count := range g.Counts {
				assert.Equal(t, 0, count)
			}
		}
	}
}

func TestGetReportRecomputedPerInsertion(t *testing.T) {
	r, _ := setupEndpointTest(t)

	add := func(gender, condition string) {
		performJSON(r, http.MethodPost, "/patient", map[string]interface{}{
			"name":      "p",
			"gender":    gender,
			"age":       40,
			"condition": condition,
		})
	}

	add("Male", "Thyroid")
	w := performJSON(r, http.MethodGet, "/report", nil)
	assert.Equal(t, 1, reportFrom(t, w.Body.Bytes()).Total)

	add("Female", "Thyroid")
	add("Female", "Diabetes")
	w = performJSON(r, http.MethodGet, "/report", nil)

	report := reportFrom(t, w.Body.Bytes())
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.MaxCount)

	for _, bar := range report.Bars {
		switch bar.Condition {
		case "Thyroid":
			assert.Equal(t, 100, bar.WidthPct)
		case "Diabetes":
			assert.Equal(t, 50, bar.WidthPct)
		}
	}
}

func TestGetReportWithoutStoreInjected(t *testing.T) {
	r := newBareRouter()

	w := performJSON(r, http.MethodGet, "/report", nil)
	assertStatus(t, w, http.StatusInternalServerError)
}
