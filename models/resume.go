package models

// ContactInfo holds the résumé header
type ContactInfo struct {
	FullName string `json:"fullName" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Phone    string `json:"phone" example:"+1 555 0100"`
	Location string `json:"location" example:"Berlin, Germany"`
	LinkedIn string `json:"linkedin,omitempty" example:"https://linkedin.com/in/janedoe"`
	Website  string `json:"website,omitempty" example:"https://janedoe.dev"`
}

// Experience is one position held
type Experience struct {
	ID         string              `json:"id" example:"exp-1"`
	Company    string              `json:"company" example:"Acme Corp"`
	Position   string              `json:"position" example:"Backend Engineer"`
	Location   string              `json:"location" example:"Remote"`
	StartDate  string              `json:"startDate" example:"Jan 2020"`
	EndDate    string              `json:"endDate" example:"Present"`
	Current    bool                `json:"current" example:"true"`
	Highlights FlexibleStringSlice `json:"highlights" swaggertype:"array,string"`
}

// Education is one degree or programme
type Education struct {
	ID             string              `json:"id" example:"edu-1"`
	Institution    string              `json:"institution" example:"TU Berlin"`
	Degree         string              `json:"degree" example:"BSc"`
	Field          string              `json:"field" example:"Computer Science"`
	Location       string              `json:"location" example:"Berlin"`
	GraduationDate string              `json:"graduationDate" example:"Jul 2019"`
	GPA            string              `json:"gpa,omitempty" example:"3.8"`
	Highlights     FlexibleStringSlice `json:"highlights" swaggertype:"array,string"`
}

// ResumeData represents a structured résumé
// @Description Structured résumé record produced by AI parsing or edited by the user
type ResumeData struct {
	Contact        ContactInfo         `json:"contact"`
	Summary        string              `json:"summary"`
	Experience     []Experience        `json:"experience"`
	Education      []Education         `json:"education"`
	Skills         FlexibleStringSlice `json:"skills" swaggertype:"array,string"`
	Certifications FlexibleStringSlice `json:"certifications" swaggertype:"array,string"`
	Languages      FlexibleStringSlice `json:"languages" swaggertype:"array,string"`
	RawText        string              `json:"rawText,omitempty"`
}
