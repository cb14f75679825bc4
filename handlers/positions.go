package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pivot/backend/catalog"
	"github.com/pivot/backend/models"
)

// PositionHandler serves the target position catalog
type PositionHandler struct {
	catalog *catalog.Catalog
	errors  ErrorMapper
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(c *catalog.Catalog) *PositionHandler {
	return &PositionHandler{catalog: c}
}

// ListPositions returns catalog positions, optionally filtered
// @Summary List target positions
// @Description List the positions offered for analysis. Filters combine with AND.
// @Tags Positions
// @Produce json
// @Param department query string false "Exact department name"
// @Param level query string false "Seniority level" Enums(entry, mid, senior, lead, principal, executive)
// @Param remote query bool false "Remote positions only (true) or on-site only (false)"
// @Param q query string false "Case-insensitive search over title, department, description and required skills"
// @Success 200 {object} models.PositionsResponse "Matching positions"
// @Failure 400 {object} models.ErrorResponse "Invalid filter"
// @Router /positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	filter := catalog.Filter{
		Department: c.Query("department"),
		Level:      c.Query("level"),
		Query:      c.Query("q"),
	}

	if raw := c.Query("remote"); raw != "" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "remote must be true or false")
			return
		}
		filter.Remote = &remote
	}

	positions := h.catalog.List(filter)
	c.JSON(http.StatusOK, models.PositionsResponse{
		Success: true,
		Data:    positions,
		Count:   len(positions),
	})
}

// GetPosition returns one position by id
// @Summary Get target position
// @Tags Positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} models.PositionResponse "Position"
// @Failure 404 {object} models.ErrorResponse "Position not found"
// @Router /positions/{id} [get]
func (h *PositionHandler) GetPosition(c *gin.Context) {
	position, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		h.errors.respondError(c, err, MsgPositionMissing)
		return
	}

	c.JSON(http.StatusOK, models.PositionResponse{
		Success: true,
		Data:    position,
	})
}

// ListDepartments returns the distinct department names
// @Summary List departments
// @Tags Positions
// @Produce json
// @Success 200 {object} models.DepartmentsResponse "Sorted department names"
// @Router /departments [get]
func (h *PositionHandler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, models.DepartmentsResponse{
		Success: true,
		Data:    h.catalog.Departments(),
	})
}
