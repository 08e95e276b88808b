package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context during request handling into a standardized JSON response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If any handler recorded an error via c.Error(...), logs the first
//     one and, when no response was written yet, replies 500 with a
//     dto.ErrorResponse body.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors[0].Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", err))
	}
}

// AbortWithError stops the chain and writes a standardized error body
// with the given status code. Handlers use it for early validation
// failures.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
