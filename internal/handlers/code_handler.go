package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jochebedafua/icd-diagnosis-api/internal/config"
	"github.com/jochebedafua/icd-diagnosis-api/internal/pagination"
	"github.com/jochebedafua/icd-diagnosis-api/internal/repository"
	"github.com/jochebedafua/icd-diagnosis-api/internal/services"
	"github.com/jochebedafua/icd-diagnosis-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CodeHandler struct {
	service services.CodeService
	pageCfg config.PaginationConfig
	logger  *logrus.Logger
}

func NewCodeHandler(service services.CodeService, pageCfg config.PaginationConfig, logger *logrus.Logger) *CodeHandler {
	return &CodeHandler{
		service: service,
		pageCfg: pageCfg,
		logger:  logger,
	}
}

// queryValues copies the request query string into url.Values for the
// paginator's link building.
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, val []byte) {
		values.Add(string(key), string(val))
	})
	return values
}

// ListCodes godoc
// @Summary List diagnosis codes
// @Description List diagnosis codes with filtering, search, and pagination
// @Tags codes
// @Accept json
// @Produce json
// @Param version query string false "Filter by coding-standard version (e.g. ICD-10)"
// @Param include_inactive query string false "Include inactive codes when 'true'"
// @Param category query int false "Filter by category id"
// @Param search query string false "Case-insensitive substring over full_code, short_description, long_description"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(20)
// @Success 200 {object} pagination.Envelope "Paginated diagnosis codes"
// @Failure 404 {object} utils.DetailResponse "Page out of range"
// @Router /codes/ [get]
func (h *CodeHandler) ListCodes(c *fiber.Ctx) error {
	ctx := c.Context()

	filter := repository.CodeFilter{
		Version:         c.Query("version"),
		IncludeInactive: strings.EqualFold(c.Query("include_inactive"), "true"),
		Search:          c.Query("search"),
	}
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return utils.BadRequest(c, "category", "invalid category id")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	query := queryValues(c)
	page := pagination.ParseParams(query, h.pageCfg)

	codes, total, err := h.service.ListCodes(ctx, filter, page)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	envelope := pagination.NewEnvelope(c.BaseURL()+c.Path(), query, page, total, newCodeListItems(codes))
	return c.Status(fiber.StatusOK).JSON(envelope)
}

// GetCode godoc
// @Summary Get diagnosis code by ID
// @Description Get a single diagnosis code, with its category details
// @Tags codes
// @Accept json
// @Produce json
// @Param id path int true "Diagnosis code ID"
// @Success 200 {object} models.Code "Diagnosis code"
// @Failure 404 {object} utils.DetailResponse "Not found"
// @Router /codes/{id}/ [get]
func (h *CodeHandler) GetCode(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	code, err := h.service.GetCode(ctx, id)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(code)
}

// CreateCode godoc
// @Summary Create a diagnosis code
// @Description Create a new diagnosis code entry
// @Tags codes
// @Accept json
// @Produce json
// @Param code body CodeRequest true "Diagnosis code payload"
// @Success 201 {object} models.Code "Created diagnosis code"
// @Failure 400 {object} map[string]string "Field-keyed validation errors"
// @Router /codes/ [post]
func (h *CodeHandler) CreateCode(c *fiber.Ctx) error {
	ctx := c.Context()

	in, err := decodeCodeInput(c.Body())
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	code, err := h.service.CreateCode(ctx, in)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(code)
}

// UpdateCode godoc
// @Summary Update a diagnosis code
// @Description Full update of a diagnosis code; omitted optional fields reset
// @Tags codes
// @Accept json
// @Produce json
// @Param id path int true "Diagnosis code ID"
// @Param code body CodeRequest true "Diagnosis code payload"
// @Success 200 {object} models.Code "Updated diagnosis code"
// @Failure 400 {object} map[string]string "Field-keyed validation errors"
// @Failure 404 {object} utils.DetailResponse "Not found"
// @Router /codes/{id}/ [put]
func (h *CodeHandler) UpdateCode(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	in, err := decodeCodeInput(c.Body())
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	code, err := h.service.UpdateCode(ctx, id, in)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(code)
}

// PatchCode godoc
// @Summary Partially update a diagnosis code
// @Description Update only the supplied fields of a diagnosis code
// @Tags codes
// @Accept json
// @Produce json
// @Param id path int true "Diagnosis code ID"
// @Param code body CodeRequest true "Sparse diagnosis code payload"
// @Success 200 {object} models.Code "Updated diagnosis code"
// @Failure 400 {object} map[string]string "Field-keyed validation errors"
// @Failure 404 {object} utils.DetailResponse "Not found"
// @Router /codes/{id}/ [patch]
func (h *CodeHandler) PatchCode(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	in, err := decodeCodeInput(c.Body())
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	code, err := h.service.PatchCode(ctx, id, in)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(code)
}

// DeleteCode godoc
// @Summary Delete a diagnosis code
// @Description Delete a diagnosis code by ID
// @Tags codes
// @Accept json
// @Produce json
// @Param id path int true "Diagnosis code ID"
// @Success 204 "Deleted"
// @Failure 404 {object} utils.DetailResponse "Not found"
// @Router /codes/{id}/ [delete]
func (h *CodeHandler) DeleteCode(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	if err := h.service.DeleteCode(ctx, id); err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
