package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seedhouse/farmops-api/internal/application/dto"
	"github.com/seedhouse/farmops-api/internal/application/usecase"
	"github.com/seedhouse/farmops-api/internal/domain"
)

// BoxHandler discrete box records and scan lookup (protected).
type BoxHandler struct {
	uc *usecase.BoxUseCase
}

// NewBoxHandler builds the handler.
func NewBoxHandler(uc *usecase.BoxUseCase) *BoxHandler {
	return &BoxHandler{uc: uc}
}

// Create godoc
// @Summary      Register a box
// @Tags         boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BoxRequest  true  "box_id, lot_number, product, weight, location"
// @Success      201   {object}  dto.BoxResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/boxes [post]
func (h *BoxHandler) Create(c *fiber.Ctx) error {
	var in dto.BoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "box_id and weight are required"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "box_id already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByBoxID godoc
// @Summary      Look up a box by its printed ID
// @Description  Backs the scan-a-box inbound source on job pages.
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        box_id  path  string  true  "Printed box ID"
// @Success      200  {object}  dto.BoxResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes/{box_id} [get]
func (h *BoxHandler) GetByBoxID(c *fiber.Ctx) error {
	out, err := h.uc.GetByBoxID(c.Params("box_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "box not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List boxes
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BoxResponse
// @Router       /api/boxes [get]
func (h *BoxHandler) List(c *fiber.Ctx) error {
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
