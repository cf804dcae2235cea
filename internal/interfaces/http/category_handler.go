package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de la taxonomía (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Árbol de familias y subfamilias con conteos
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/inventory/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.ListAll()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// CreateFamily godoc
// @Summary      Crear familia
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryNameRequest  true  "nom"
// @Success      201   {object}  dto.FamilyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/categories/families [post]
func (h *CategoryHandler) CreateFamily(c *fiber.Ctx) error {
	var in dto.CategoryNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateFamily(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateFamily godoc
// @Summary      Renombrar familia
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la familia"
// @Param        body  body  dto.CategoryNameRequest  true  "nom"
// @Success      200   {object}  dto.FamilyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/categories/families/{id} [put]
func (h *CategoryHandler) UpdateFamily(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CategoryNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateFamily(int64(id), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// DeleteFamily godoc
// @Summary      Eliminar familia (bloqueada si tiene subfamilias)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la familia"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/categories/families/{id} [delete]
func (h *CategoryHandler) DeleteFamily(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteFamily(int64(id)); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "familia eliminada"})
}

// CreateSubfamily godoc
// @Summary      Crear subfamilia
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryNameRequest  true  "nom, fam_id"
// @Success      201   {object}  dto.SubfamilyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/categories/subfamilies [post]
func (h *CategoryHandler) CreateSubfamily(c *fiber.Ctx) error {
	var in dto.CategoryNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CreateSubfamily(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateSubfamily godoc
// @Summary      Renombrar o mover subfamilia
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la subfamilia"
// @Param        body  body  dto.CategoryNameRequest  true  "nom y/o fam_id"
// @Success      200   {object}  dto.SubfamilyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/categories/subfamilies/{id} [put]
func (h *CategoryHandler) UpdateSubfamily(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CategoryNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateSubfamily(int64(id), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// DeleteSubfamily godoc
// @Summary      Eliminar subfamilia (bloqueada si tiene productos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la subfamilia"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/categories/subfamilies/{id} [delete]
func (h *CategoryHandler) DeleteSubfamily(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteSubfamily(int64(id)); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "subfamilia eliminada"})
}
