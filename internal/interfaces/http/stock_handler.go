package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/application/stock"
	"github.com/puntoventa/minimarket-api/internal/domain/ledger"
)

// StockHandler maneja las peticiones HTTP del ledger de entradas (protegido).
type StockHandler struct {
	createUC  *stock.CreateEntryUseCase
	queryUC   *stock.QueryUseCase
	voucherUC *stock.VoucherUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(createUC *stock.CreateEntryUseCase, queryUC *stock.QueryUseCase, voucherUC *stock.VoucherUseCase) *StockHandler {
	return &StockHandler{createUC: createUC, queryUC: queryUC, voucherUC: voucherUC}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "productos (precio_compra opcional por línea), total_pagado, incluye_igv, cliente_id, observaciones"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.createUC.CreateEntry(c.Context(), userID, in)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar entradas de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        page         query  int     false  "Página (>= 1)"
// @Param        limit        query  int     false  "Filas por página (5..100, default 25)"
// @Param        search       query  string  false  "Número, nombre o doc del proveedor (mínimo 2 caracteres)"
// @Param        cliente_id   query  int     false  "Filtrar por proveedor"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        incluye_igv  query  string  false  "true | false"
// @Success      200  {object}  dto.ListEntriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var q dto.ListEntriesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	resp, err := h.queryUC.ListEntries(c.Context(), q)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Detalle de una entrada
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la entrada"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.queryUC.GetEntry(c.Context(), int64(id))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Stats godoc
// @Summary      Resumen de entradas de los últimos N días
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Días hacia atrás (1..365, default 30)"
// @Success      200  {object}  dto.EntryStatsResponse
// @Router       /api/inventory/stock/stats/summary [get]
func (h *StockHandler) Stats(c *fiber.Ctx) error {
	days := c.QueryInt("dias", 0)
	resp, err := h.queryUC.Stats(c.Context(), days)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(resp)
}

// Voucher godoc
// @Summary      Comprobante PDF de una entrada
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la entrada"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock/{id}/pdf [get]
func (h *StockHandler) Voucher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pdf, filename, err := h.voucherUC.GenerateVoucher(c.Context(), int64(id))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

// mapLedgerError traduce los errores tipados del ledger. ReferenceError
// incluye la lista completa de códigos faltantes para que el cliente corrija
// el request de una vez.
func mapLedgerError(c *fiber.Ctx, err error) error {
	var (
		vErr *ledger.ValidationError
		rErr *ledger.ReferenceError
		pErr *ledger.PricingError
		tErr *ledger.TaxError
		sErr *ledger.StorageError
	)
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field,
		})
	case errors.As(err, &rErr):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "REFERENCE_NOT_FOUND", Message: rErr.Error(), MissingProducts: rErr.MissingProducts,
		})
	case errors.As(err, &pErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "PRICING", Message: pErr.Error(),
		})
	case errors.As(err, &tErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "TAX", Message: tErr.Error(),
		})
	case errors.As(err, &sErr):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "STORAGE", Message: "no se pudo registrar la entrada; no quedaron efectos",
		})
	default:
		return mapDomainError(c, err)
	}
}
