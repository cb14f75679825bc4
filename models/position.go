package models

// Position is a target role from the reference catalog
// @Description Target position the user can analyze their résumé against
type Position struct {
	ID               string   `json:"id" yaml:"id" example:"ml-engineer-senior"`
	Title            string   `json:"title" yaml:"title" example:"Senior Machine Learning Engineer"`
	Department       string   `json:"department" yaml:"department" example:"AI/ML Platform Services"`
	Level            string   `json:"level" yaml:"level" example:"senior" enums:"entry,mid,senior,lead,principal,executive"`
	Description      string   `json:"description" yaml:"description"`
	RequiredSkills   []string `json:"requiredSkills" yaml:"requiredSkills"`
	NiceToHaveSkills []string `json:"niceToHaveSkills" yaml:"niceToHaveSkills"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
	SalaryRange      string   `json:"salaryRange" yaml:"salaryRange" example:"$150K - $200K"`
	Remote           bool     `json:"remote" yaml:"remote"`
}
