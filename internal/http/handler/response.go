package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stresstrack/internal/service"
	"stresstrack/internal/validate"
)

// successResponse is the uniform success envelope: {success: true, data: ...}.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// failureResponse is the uniform failure envelope: {success: false, message: ...}.
type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondSuccess(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(successResponse{Success: true, Data: data})
}

func respondFailure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(failureResponse{Success: false, Message: message})
}

// statusForError maps domain validation failures to 400 and everything else
// (backend, transform) to 500. Error messages are surfaced verbatim either way.
func statusForError(err error) int {
	switch {
	case errors.Is(err, validate.ErrStressLevelRange),
		errors.Is(err, validate.ErrInvalidFileType),
		errors.Is(err, service.ErrUserIDRequired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses into the failure envelope without leaking internal errors.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return respondFailure(c, status, "bad request")
		case fiber.StatusNotFound:
			return respondFailure(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return respondFailure(c, status, "method not allowed")
		default:
			return respondFailure(c, status, "internal server error")
		}
	}
}
