package utils

import (
	"errors"

	"github.com/jochebedafua/icd-diagnosis-api/internal/apperrors"
	"github.com/jochebedafua/icd-diagnosis-api/internal/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// DetailResponse is the body for simple 404s and internal errors.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// RenderError maps the structured error taxonomy onto HTTP responses.
// Validation errors render as a field-keyed object, exactly one message per
// field; nothing below the taxonomy (driver errors included) leaks through.
func RenderError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(verr.Fields)
	}

	var perr *apperrors.ProtectedError
	if errors.As(err, &perr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": perr.Message,
		})
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(DetailResponse{Detail: "Not found."})
	}

	if errors.Is(err, pagination.ErrPageNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(DetailResponse{Detail: "Invalid page."})
	}

	log.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("Request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(DetailResponse{Detail: "Internal server error."})
}

// BadRequest renders a single-field validation failure without going through
// the service layer, e.g. an unparseable body or path parameter.
func BadRequest(c *fiber.Ctx, field, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{field: message})
}
