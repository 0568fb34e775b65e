package handler

import (
	"github.com/gofiber/fiber/v2"

	"practice/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return s
}

// writeError writes a standardized JSON error response. code is a short
// machine-readable identifier; message is safe to show to clients and never
// carries internal error text.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

var statusCodes = map[int][2]string{
	fiber.StatusBadRequest:         {"BAD_REQUEST", "bad request"},
	fiber.StatusNotFound:           {"NOT_FOUND", "resource not found"},
	fiber.StatusMethodNotAllowed:   {"METHOD_NOT_ALLOWED", "method not allowed"},
	fiber.StatusServiceUnavailable: {"SERVICE_UNAVAILABLE", "dependency unavailable"},
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		if m, ok := statusCodes[status]; ok {
			return writeError(c, status, m[0], m[1])
		}
		return writeError(c, status, "INTERNAL_ERROR", "internal server error")
	}
}
