package model

// ConditionReference is one entry of the static health-condition reference
// dataset. Image is optional; a missing or broken image reference must not
// fail rendering.
// @Description Reference information for a health condition
type ConditionReference struct {
	Name       string   `json:"name" example:"Diabetes"`
	Symptoms   []string `json:"symptoms"`
	Prevention []string `json:"prevention"`
	Treatment  string   `json:"treatment" example:"Insulin therapy"`
	Image      string   `json:"image,omitempty" example:"images/diabetes.png"`
}
