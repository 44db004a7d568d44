package handler

import "github.com/gofiber/fiber/v2"

// Error codes surfaced to clients. Anything outside this set collapses into a
// generic internal error so infrastructure details never leak.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
)

// SuccessEnvelope wraps every 2xx payload.
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorEnvelope wraps every non-2xx payload.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) SuccessEnvelope {
	return SuccessEnvelope{Success: true, Data: data}
}

func ErrorResponse(message, code string) ErrorEnvelope {
	return ErrorEnvelope{Success: false, Message: message, Code: code}
}

// NotFoundHandler answers unmatched routes with the uniform error envelope.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse("Resource not found", CodeNotFound))
}
