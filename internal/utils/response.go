package utils

import "github.com/gin-gonic/gin"

// ErrorDetail is the body of every non-validation error response.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse is the 422 body: a fixed detail plus a flat list
// of "field: message" strings, one per failed constraint.
type ValidationErrorResponse struct {
	Detail string   `json:"detail"`
	Errors []string `json:"errors"`
}

// Error writes an error response with the given status and detail message.
func Error(c *gin.Context, code int, detail string) {
	c.JSON(code, ErrorDetail{Detail: detail})
}

// ValidationError writes a 422 response carrying the flat per-field messages.
func ValidationError(c *gin.Context, errs []string) {
	c.JSON(422, ValidationErrorResponse{
		Detail: "Validation Error",
		Errors: errs,
	})
}
