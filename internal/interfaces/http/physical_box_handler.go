package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seedhouse/farmops-api/internal/application/dto"
	"github.com/seedhouse/farmops-api/internal/application/usecase"
	"github.com/seedhouse/farmops-api/internal/domain"
)

// PhysicalBoxHandler tare registry (protected).
type PhysicalBoxHandler struct {
	uc *usecase.PhysicalBoxUseCase
}

// NewPhysicalBoxHandler builds the handler.
func NewPhysicalBoxHandler(uc *usecase.PhysicalBoxUseCase) *PhysicalBoxHandler {
	return &PhysicalBoxHandler{uc: uc}
}

// Create godoc
// @Summary      Register a physical box tare
// @Tags         physical-boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PhysicalBoxRequest  true  "id (printed label), weight, description"
// @Success      201   {object}  dto.PhysicalBoxResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/physical-boxes [post]
func (h *PhysicalBoxHandler) Create(c *fiber.Ctx) error {
	var in dto.PhysicalBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id and weight are required"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "physical box id already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List physical boxes
// @Tags         physical-boxes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PhysicalBoxResponse
// @Router       /api/physical-boxes [get]
func (h *PhysicalBoxHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Look up a physical box tare
// @Tags         physical-boxes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Physical box ID"
// @Success      200  {object}  dto.PhysicalBoxResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/physical-boxes/{id} [get]
func (h *PhysicalBoxHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "physical box not found"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a physical box tare
// @Tags         physical-boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Physical box ID"
// @Param        body  body  dto.PhysicalBoxRequest  true  "Fields to update"
// @Success      200   {object}  dto.PhysicalBoxResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/physical-boxes/{id} [put]
func (h *PhysicalBoxHandler) Update(c *fiber.Ctx) error {
	var in dto.PhysicalBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "physical box not found"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remove a physical box tare
// @Tags         physical-boxes
// @Security     Bearer
// @Param        id  path  string  true  "Physical box ID"
// @Success      200  {object}  map[string]string
// @Router       /api/physical-boxes/{id} [delete]
func (h *PhysicalBoxHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "physical box deleted"})
}
