package stock

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain/ledger"
)

// ValidateEntry valida estructura y reglas de negocio de un request de
// entrada antes de tocar la BD. Es un chequeo puro: no consulta referencias
// (eso ocurre dentro de la transacción).
func ValidateEntry(in dto.CreateEntryRequest) error {
	if len(in.Lines) == 0 {
		return &ledger.ValidationError{Field: "productos", Message: "debe incluir al menos un producto"}
	}
	if !in.AmountPaid.GreaterThan(decimal.Zero) {
		return &ledger.ValidationError{Field: "total_pagado", Message: "debe ser mayor a 0"}
	}

	seen := make(map[string]bool, len(in.Lines))
	for i, line := range in.Lines {
		cod := strings.TrimSpace(line.ProductCod)
		if cod == "" {
			return &ledger.ValidationError{
				Field:   fmt.Sprintf("productos[%d].producto_cod", i),
				Message: "código requerido",
			}
		}
		// Códigos repetidos se rechazan, no se fusionan: una línea por producto.
		if seen[cod] {
			return &ledger.ValidationError{
				Field:   fmt.Sprintf("productos[%d].producto_cod", i),
				Message: "producto repetido en la entrada",
			}
		}
		seen[cod] = true

		if !line.Quantity.GreaterThan(decimal.Zero) {
			return &ledger.ValidationError{
				Field:   fmt.Sprintf("productos[%d].cantidad", i),
				Message: "debe ser mayor a 0",
			}
		}
		if line.UnitCost != nil && !line.UnitCost.GreaterThan(decimal.Zero) {
			return &ledger.ValidationError{
				Field:   fmt.Sprintf("productos[%d].precio_compra", i),
				Message: "debe ser mayor a 0",
			}
		}
	}
	return nil
}
