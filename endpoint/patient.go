package endpoint

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ariebrainware/health-tracker/util"
)

// CreatePatient godoc
// @Summary      Register a patient record
// @Description  Validate an intake form submission and append it to the session store
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body createPatientRequest true "Patient information"
// @Success      200 {object} util.APIResponse{data=model.PatientRecord} "Patient added"
// @Failure      400 {object} util.APIResponse "Validation failed"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [post]
func CreatePatient(c *gin.Context) {
	var patientRequest createPatientRequest
	if err := c.ShouldBindJSON(&patientRequest); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	s, ok := ensureStore(c)
	if !ok {
		return
	}

	record, fieldErrors := validatePatientRequest(patientRequest)
	if fieldErrors != nil {
		util.CallValidationError(c, util.APIValidationParams{
			Msg:    "Please fill in all fields correctly",
			Fields: fieldErrors,
		})
		return
	}

	s.Add(record)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient added successfully",
		Data: record,
	})
}

// ListPatients godoc
// @Summary      List patient records
// @Description  Get the session's patient records in insertion order, with optional paging
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results" default(100)
// @Param        offset query int false "Offset for pagination" default(0)
// @Success      200 {object} util.APIResponse{data=[]model.PatientRecord} "Patients retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [get]
func ListPatients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	s, ok := ensureStore(c)
	if !ok {
		return
	}

	records := s.List()
	total := len(records)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Patients retrieved",
		Data: map[string]interface{}{
			"patients": records,
			"total":    total,
		},
	})
}

// ClearPatients godoc
// @Summary      Clear all patient records
// @Description  Reset the session store, removing every record
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Success      200 {object} util.APIResponse "Patients cleared"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [delete]
func ClearPatients(c *gin.Context) {
	s, ok := ensureStore(c)
	if !ok {
		return
	}

	cleared := s.Len()
	s.Clear()

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  fmt.Sprintf("Cleared %d patient records", cleared),
		Data: nil,
	})
}
