package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores tipados del ledger de entradas. A diferencia de los sentinels de
// internal/domain, estos cargan el detalle que el cliente necesita para
// corregir su request (campo ofensor, códigos faltantes, montos).

// ValidationError request malformado o fuera de rango. Sin efectos en BD.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ReferenceError producto o proveedor inexistente. Lista TODOS los códigos
// ofensores, no solo el primero. Sin efectos en BD.
type ReferenceError struct {
	MissingProducts []string // códigos no encontrados o inactivos
	MissingSupplier bool
	SupplierID      int64
}

func (e *ReferenceError) Error() string {
	var parts []string
	if len(e.MissingProducts) > 0 {
		parts = append(parts, "productos no encontrados: "+strings.Join(e.MissingProducts, ", "))
	}
	if e.MissingSupplier {
		parts = append(parts, fmt.Sprintf("proveedor %d no encontrado", e.SupplierID))
	}
	if len(parts) == 0 {
		return "referencia no encontrada"
	}
	return strings.Join(parts, "; ")
}

// PricingError el monto pagado no alcanza para derivar los costos abiertos.
type PricingError struct {
	AmountPaid decimal.Decimal
	FixedTotal decimal.Decimal
	Message    string
}

func (e *PricingError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("monto pagado %s no deja valor a distribuir (fijo %s)",
		e.AmountPaid.StringFixed(2), e.FixedTotal.StringFixed(2))
}

// TaxError con IGV incluido, el monto pagado no puede ser menor al subtotal.
type TaxError struct {
	AmountPaid decimal.Decimal
	Subtotal   decimal.Decimal
}

func (e *TaxError) Error() string {
	return fmt.Sprintf("monto pagado %s es menor al subtotal %s con IGV incluido",
		e.AmountPaid.StringFixed(2), e.Subtotal.StringFixed(2))
}

// StorageError fallo al persistir; la transacción completa se revirtió.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "error de almacenamiento: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }
