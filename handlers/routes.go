package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pivot/backend/agent"
	"github.com/pivot/backend/catalog"
)

// RegisterRoutes mounts the REST API on rg
func RegisterRoutes(rg *gin.RouterGroup, careerAgent *agent.CareerAgent, positions *catalog.Catalog) {
	resumeHandler := NewResumeHandler(careerAgent)
	positionHandler := NewPositionHandler(positions)

	rg.GET("/health", HealthCheck)
	rg.GET("/ready", Ready(careerAgent))

	rg.POST("/analyze", resumeHandler.Analyze)
	rg.POST("/resume/parse", resumeHandler.ParseResume)
	rg.POST("/resume/export", resumeHandler.ExportResume)

	rg.GET("/positions", positionHandler.ListPositions)
	rg.GET("/positions/:id", positionHandler.GetPosition)
	rg.GET("/departments", positionHandler.ListDepartments)
}
