package handlers

import (
	"strconv"

	"github.com/jochebedafua/icd-diagnosis-api/internal/apperrors"
	"github.com/jochebedafua/icd-diagnosis-api/internal/config"
	"github.com/jochebedafua/icd-diagnosis-api/internal/pagination"
	"github.com/jochebedafua/icd-diagnosis-api/internal/repository"
	"github.com/jochebedafua/icd-diagnosis-api/internal/services"
	"github.com/jochebedafua/icd-diagnosis-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	service services.CategoryService
	pageCfg config.PaginationConfig
	logger  *logrus.Logger
}

func NewCategoryHandler(service services.CategoryService, pageCfg config.PaginationConfig, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		pageCfg: pageCfg,
		logger:  logger,
	}
}

// parseID reads the :id path parameter. A non-numeric id never identifies a
// record, so it renders the same 404 as a missing one.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperrors.ErrNotFound
	}
	return uint(id), nil
}

// ListCategories godoc
// @Summary List diagnosis categories
// @Description List categories with version filtering and pagination
// @Tags categories
// @Accept json
// @Produce json
// @Param version query string false "Filter by coding-standard version (e.g. ICD-10)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(20)
// @Success 200 {object} pagination.Envelope "Paginated categories"
// @Failure 404 {object} utils.DetailResponse "Page out of range"
// @Router /categories/ [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	ctx := c.Context()

	filter := repository.CategoryFilter{
		Version: c.Query("version"),
	}

	query := queryValues(c)
	page := pagination.ParseParams(query, h.pageCfg)

	categories, total, err := h.service.ListCategories(ctx, filter, page)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	envelope := pagination.NewEnvelope(c.BaseURL()+c.Path(), query, page, total, categories)
	return c.Status(fiber.StatusOK).JSON(envelope)
}

// GetCategory godoc
// @Summary Get category by ID
// @Description Get a single diagnosis category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category "Category"
// @Failure 404 {object} utils.DetailResponse "Not found"
// @Router /categories/{id}/ [get]
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	category, err := h.service.GetCategory(ctx, id)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// CreateCategory godoc
// @Summary Create a category
// @Description Create a new diagnosis category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category payload"
// @Success 201 {object} models.Category "Created category"
// @Failure 400 {object} map[string]string "Field-keyed validation errors"
// @Router /categories/ [post]
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	ctx := c.Context()

	in, err := decodeCategoryInput(c.Body())
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	category, err := h.service.CreateCategory(ctx, in)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Full update of a diagnosis category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Category payload"
// @Success 200 {object} models.Category "Updated category"
// @Failure 400 {object} map[string]string "Field-keyed validation errors"
// @Failure 404 {object} utils.DetailResponse "Not found"
// @Router /categories/{id}/ [put]
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	in, err := decodeCategoryInput(c.Body())
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	category, err := h.service.UpdateCategory(ctx, id, in)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category; rejected while diagnosis codes reference it
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Category still referenced"
// @Failure 404 {object} utils.DetailResponse "Not found"
// @Router /categories/{id}/ [delete]
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.RenderError(c, h.logger, err)
	}

	if err := h.service.DeleteCategory(ctx, id); err != nil {
		return utils.RenderError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
