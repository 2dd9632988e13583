package model

// ConditionBar is one proportional bar of the report chart. WidthPct is
// count relative to the highest condition count, so the busiest condition
// renders at 100 and a zero count renders at 0.
type ConditionBar struct {
	Condition string `json:"condition" example:"Diabetes"`
	Count     int    `json:"count" example:"3"`
	WidthPct  int    `json:"width_pct" example:"100"`
}

// GenderBreakdown lists per-condition counts for one gender. Every
// enumerated condition is present, zero counts included.
type GenderBreakdown struct {
	Gender string         `json:"gender" example:"Female"`
	Counts map[string]int `json:"counts"`
}

// Report is the view-model of the summary report. It carries plain data
// only; rendering is the caller's concern.
// @Description Aggregated patient report
type Report struct {
	Empty    bool              `json:"empty"`
	Message  string            `json:"message,omitempty"`
	Total    int               `json:"total"`
	MaxCount int               `json:"max_count"`
	Bars     []ConditionBar    `json:"bars,omitempty"`
	Genders  []GenderBreakdown `json:"genders,omitempty"`
}

const emptyReportMessage = "No patient records yet. Add a patient to see the report."

// BuildReport aggregates the records into the report view-model. It is a
// pure function of its input and is recomputed in full on every call.
//
// Records whose condition or gender fall outside the enumerations are
// counted in Total but excluded from the bars and breakdowns, so
// sum(condition counts) can be less than Total.
func BuildReport(records []PatientRecord) Report {
	if len(records) == 0 {
		return Report{Empty: true, Message: emptyReportMessage}
	}

	conditionCount := make(map[string]int, len(Conditions))
	genderCount := make(map[string]map[string]int, len(Genders))
	for _, g := range Genders {
		genderCount[g] = make(map[string]int, len(Conditions))
		for _, cond := range Conditions {
			genderCount[g][cond] = 0
		}
	}
	for _, cond := range Conditions {
		conditionCount[cond] = 0
	}

	for _, r := range records {
		if _, ok := conditionCount[r.Condition]; !ok {
			continue
		}
		conditionCount[r.Condition]++
		if counts, ok := genderCount[r.Gender]; ok {
			counts[r.Condition]++
		}
	}

	maxCount := 0
	for _, cond := range Conditions {
		if conditionCount[cond] > maxCount {
			maxCount = conditionCount[cond]
		}
	}

	bars := make([]ConditionBar, 0, len(Conditions))
	for _, cond := range Conditions {
		width := 0
		if maxCount > 0 {
			width = conditionCount[cond] * 100 / maxCount
		}
		bars = append(bars, ConditionBar{
			Condition: cond,
			Count:     conditionCount[cond],
			WidthPct:  width,
		})
	}

	genders := make([]GenderBreakdown, 0, len(Genders))
	for _, g := range Genders {
		genders = append(genders, GenderBreakdown{Gender: g, Counts: genderCount[g]})
	}

	return Report{
		Total:    len(records),
		MaxCount: maxCount,
		Bars:     bars,
		Genders:  genders,
	}
}
