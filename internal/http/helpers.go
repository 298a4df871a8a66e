package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learnvocab/internal/schema"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"` // field→message map for validation errors
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondValidationError sends a 400 response carrying the per-field
// constraint violations.
func respondValidationError(c *gin.Context, ve *schema.ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid word data",
		Details: ve.Fields,
	})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 error and returns false when the
// parameter is not a valid integer; no store access happens in that case.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
