package models

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Target position is required"`
	Details string `json:"details,omitempty" example:"request_id=2f1c..."`
}

// AnalyzeResponse wraps a successful analysis
// @Description Skill gap analysis response
type AnalyzeResponse struct {
	Success bool            `json:"success" example:"true"`
	Data    *AnalysisResult `json:"data"`
}

// ParseResponse wraps a successfully structured résumé
// @Description Structured résumé response; data.rawText carries the extracted text
type ParseResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    *ResumeData `json:"data"`
}

// ExportRequest is the body of POST /resume/export
// @Description Résumé export request
type ExportRequest struct {
	ResumeData *ResumeData `json:"resumeData"`
	Format     string      `json:"format" example:"pdf" enums:"json,md,pdf,odt"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Message   string `json:"message" example:"Pivot API is running"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ReadyResponse reports whether the server can reach an LLM provider
// @Description Readiness status
type ReadyResponse struct {
	Status   string `json:"status" example:"ready"`
	Provider string `json:"provider" example:"OpenAI"`
	Message  string `json:"message,omitempty"`
}

// PositionsResponse lists catalog positions
// @Description Target position catalog
type PositionsResponse struct {
	Success bool       `json:"success" example:"true"`
	Data    []Position `json:"data"`
	Count   int        `json:"count" example:"12"`
}

// PositionResponse wraps a single catalog position
// @Description Single target position
type PositionResponse struct {
	Success bool      `json:"success" example:"true"`
	Data    *Position `json:"data"`
}

// DepartmentsResponse lists catalog departments
// @Description Department names present in the catalog
type DepartmentsResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    []string `json:"data"`
}
