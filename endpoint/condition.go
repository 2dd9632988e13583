package endpoint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ariebrainware/health-tracker/conditions"
	"github.com/ariebrainware/health-tracker/model"
	"github.com/ariebrainware/health-tracker/util"
)

// lookupHint lists example valid queries for a not-found response. Dataset
// names are preferred; the enumeration is the fallback when the dataset
// cannot be listed.
func lookupHint(c *gin.Context, client *conditions.Client) string {
	names, err := client.Names(c.Request.Context())
	if err != nil || len(names) == 0 {
		names = model.Conditions
	}
	return strings.Join(names, ", ")
}

// LookupCondition godoc
// @Summary      Look up condition reference data
// @Description  Find symptoms, prevention and treatment for a condition by name (case-insensitive exact match)
// @Tags         Condition
// @Accept       json
// @Produce      json
// @Param        name query string true "Condition name" example("Diabetes")
// @Success      200 {object} util.APIResponse{data=model.ConditionReference} "Condition retrieved"
// @Failure      400 {object} util.APIResponse "Empty query"
// @Failure      404 {object} util.APIResponse "No matching condition"
// @Failure      502 {object} util.APIResponse "Dataset unavailable"
// @Router       /condition/lookup [get]
func LookupCondition(c *gin.Context) {
	client, ok := ensureConditions(c)
	if !ok {
		return
	}

	query := c.Query("name")
	entry, err := client.Lookup(c.Request.Context(), query)
	switch {
	case err == nil:
		util.CallSuccessOK(c, util.APISuccessParams{
			Msg:  "Condition retrieved",
			Data: entry,
		})
	case errors.Is(err, conditions.ErrEmptyQuery):
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Please enter a condition name",
			Err: err,
		})
	case errors.Is(err, conditions.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: fmt.Sprintf("No results found for %q. Try one of: %s", strings.TrimSpace(query), lookupHint(c, client)),
			Err: err,
		})
	default:
		util.CallBadGateway(c, util.APIErrorParams{
			Msg: "Error loading condition data",
			Err: err,
		})
	}
}

// ListConditions godoc
// @Summary      List condition reference entries
// @Description  Get the names of all conditions in the reference dataset
// @Tags         Condition
// @Accept       json
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]string} "Conditions retrieved"
// @Failure      502 {object} util.APIResponse "Dataset unavailable"
// @Router       /condition [get]
func ListConditions(c *gin.Context) {
	client, ok := ensureConditions(c)
	if !ok {
		return
	}

	names, err := client.Names(c.Request.Context())
	if err != nil {
		util.CallBadGateway(c, util.APIErrorParams{
			Msg: "Error loading condition data",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Conditions retrieved",
		Data: names,
	})
}
