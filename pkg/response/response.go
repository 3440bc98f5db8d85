package response

import "github.com/gin-gonic/gin"

// ErrorBody is the uniform error payload. Every failure of a given kind
// returns the same shape; unauthorized responses in particular carry no
// hint about which check failed.
type ErrorBody struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error writes an error body with the given status.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorBody{Message: message, Details: details})
}

// AbortError writes an error body and stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}
