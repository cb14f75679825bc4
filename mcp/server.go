// Package mcp exposes the résumé pipelines as Model Context Protocol tools
// so AI agents can call them over streamable HTTP.
package mcp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pivot/backend/agent"
	"github.com/pivot/backend/catalog"
	"github.com/pivot/backend/handlers"
)

// Version is the MCP server version
const Version = "1.0.0"

// Server is the MCP server for Pivot
type Server struct {
	agent   *agent.CareerAgent
	catalog *catalog.Catalog
	errors  handlers.ErrorMapper
	server  *mcp.Server
}

// NewServer creates a new MCP server backed by the same agent and catalog
// as the REST API
func NewServer(careerAgent *agent.CareerAgent, positions *catalog.Catalog) *Server {
	impl := &mcp.Implementation{
		Name:    "pivot",
		Version: Version,
	}

	s := &Server{
		agent:   careerAgent,
		catalog: positions,
		errors:  handlers.ErrorMapper{MaxUploadBytes: careerAgent.Store().MaxBytes()},
		server:  mcp.NewServer(impl, nil),
	}
	s.registerTools()
	return s
}

// Handler returns the streamable HTTP transport for the server
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RegisterRoutes mounts the MCP endpoint on the given router group
func (s *Server) RegisterRoutes(router *gin.RouterGroup) {
	h := gin.WrapH(s.Handler())
	router.GET("/mcp", h)
	router.POST("/mcp", h)
	router.DELETE("/mcp", h)
}
