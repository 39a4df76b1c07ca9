package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"legaldocs/internal/http/middleware"
	"legaldocs/internal/service"
)

// errorPayload defines the standardized error response body. Message is a
// string, or the list of validation messages for rejected uploads.
type errorPayload struct {
	Message   any    `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code string, message any) error {
	return c.Status(status).JSON(errorPayload{
		Message:   message,
		Code:      code,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// writeServiceError maps a service error kind to its HTTP response. Upstream
// failures are logged and answered with failMsg; the cause never reaches the
// client.
func writeServiceError(c *fiber.Ctx, log logrus.FieldLogger, err error, failMsg string) error {
	var se *service.Error
	if !errors.As(err, &se) {
		se = &service.Error{Kind: service.KindUpstream, Err: err}
	}

	switch se.Kind {
	case service.KindValidation:
		return writeError(c, fiber.StatusBadRequest, "INVALID_DOCUMENT", se.Messages)
	case service.KindForbidden:
		return writeError(c, fiber.StatusForbidden, "NOT_DRAFT", "Filing is not a draft.")
	case service.KindShape:
		log.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFromCtx(c),
			"key":        se.Key,
		}).WithError(err).Warn("unexpected document record service response")
		return writeError(c, fiber.StatusBadRequest, "UNEXPECTED_RESPONSE", failMsg)
	case service.KindUpstream:
		log.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFromCtx(c),
			"op":         se.Op,
			"key":        se.Key,
		}).WithError(err).Error(failMsg)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", failMsg)
	default:
		panic(fmt.Sprintf("unhandled service error kind %d", se.Kind))
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "unauthorized")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
