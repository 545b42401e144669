package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope handed to the rendering collaborator. Page
// carries the page-type tag; Data the assembled view model.
type Response struct {
	Success bool        `json:"success"`
	Page    string      `json:"page,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Page emits an assembled view model tagged with its page type.
func Page(c *gin.Context, statusCode int, page string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Page:    page,
		Data:    data,
	})
}

// Success emits data without a page tag (API-style responses).
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, "BAD_REQUEST", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, "INTERNAL_SERVER_ERROR", message)
}
