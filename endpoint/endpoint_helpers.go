package endpoint

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ariebrainware/health-tracker/conditions"
	"github.com/ariebrainware/health-tracker/middleware"
	"github.com/ariebrainware/health-tracker/model"
	"github.com/ariebrainware/health-tracker/store"
	"github.com/ariebrainware/health-tracker/util"
)

type createPatientRequest struct {
	Name      string `json:"name" example:"Ana"`
	Gender    string `json:"gender" example:"Female"`
	Age       *int   `json:"age" example:"34"`
	Condition string `json:"condition" example:"Diabetes"`
}

// helper: ensure the record store is available in context or respond with server error
func ensureStore(c *gin.Context) (*store.RecordStore, bool) {
	s := middleware.GetStore(c)
	if s == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Record store not available",
			Err: fmt.Errorf("store is nil"),
		})
		return nil, false
	}
	return s, true
}

// helper: ensure the condition reference client is available in context
func ensureConditions(c *gin.Context) (*conditions.Client, bool) {
	client := middleware.GetConditions(c)
	if client == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Condition reference data not available",
			Err: fmt.Errorf("conditions client is nil"),
		})
		return nil, false
	}
	return client, true
}

// validatePatientRequest evaluates every validation rule and returns the
// accepted record together with a per-field error map. All rules run even
// after one fails so the client can mark every offending field at once.
// Enumeration values are matched case-insensitively and stored canonically.
func validatePatientRequest(req createPatientRequest) (model.PatientRecord, map[string]string) {
	fieldErrors := map[string]string{}

	name := util.NormalizeName(req.Name)
	if name == "" {
		fieldErrors["name"] = "name is required"
	}

	switch {
	case req.Age == nil:
		fieldErrors["age"] = "age is required"
	case *req.Age < model.MinAge || *req.Age > model.MaxAge:
		fieldErrors["age"] = fmt.Sprintf("age must be between %d and %d", model.MinAge, model.MaxAge)
	}

	condition, condOK := model.CanonicalCondition(req.Condition)
	if strings.TrimSpace(req.Condition) == "" {
		fieldErrors["condition"] = "condition is required"
	} else if !condOK {
		fieldErrors["condition"] = fmt.Sprintf("condition must be one of: %s", strings.Join(model.Conditions, ", "))
	}

	gender, genderOK := model.CanonicalGender(req.Gender)
	if strings.TrimSpace(req.Gender) == "" {
		fieldErrors["gender"] = "gender is required"
	} else if !genderOK {
		fieldErrors["gender"] = fmt.Sprintf("gender must be one of: %s", strings.Join(model.Genders, ", "))
	}

	if len(fieldErrors) > 0 {
		return model.PatientRecord{}, fieldErrors
	}

	return model.PatientRecord{
		Name:      name,
		Gender:    gender,
		Age:       *req.Age,
		Condition: condition,
		CreatedAt: time.Now(),
	}, nil
}
