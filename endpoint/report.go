package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/ariebrainware/health-tracker/model"
	"github.com/ariebrainware/health-tracker/util"
)

// GetReport godoc
// @Summary      Get the patient summary report
// @Description  Aggregate the session's records into total, per-condition and per-gender counts with chart scaling
// @Tags         Report
// @Accept       json
// @Produce      json
// @Success      200 {object} util.APIResponse{data=model.Report} "Report generated"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /report [get]
func GetReport(c *gin.Context) {
	s, ok := ensureStore(c)
	if !ok {
		return
	}

	report := model.BuildReport(s.List())

	msg := "Report generated"
	if report.Empty {
		msg = "No patient data available"
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  msg,
		Data: report,
	})
}
