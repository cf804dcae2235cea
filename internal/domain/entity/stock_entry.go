package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento y de operación en compra.
const (
	DocTypeBoleta    = "B"
	OperationStockIn = "C" // compra / entrada de stock
)

// StockEntry es la cabecera de una entrada de stock (tabla compra,
// tipo_operacion = 'C'). Se crea una sola vez, de forma atómica con todas
// sus líneas; nunca se edita ni se anula desde este sistema.
// Invariante: Subtotal + Tax == AmountPaid una vez resueltas las derivaciones;
// AmountPaid es el dato del cliente, Subtotal y Tax se derivan.
type StockEntry struct {
	ID            int64
	Num           int64  // correlativo asignado por la BD al confirmar
	SupplierID    *int64 // cli_id, opcional
	DocType       string // tipo ("B")
	OperationType string // tipo_operacion ("C")
	Date          time.Time // asignada por el servidor, inmutable
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal // igv; > 0 solo si la entrada incluye IGV
	DiscountTotal decimal.Decimal // desc_total (siempre 0 en entradas)
	AmountPaid    decimal.Decimal // total: monto pagado, verdad del cliente
	Note          string          // observaciones
	UserID        int64           // usuario que registró la entrada

	// Datos del proveedor resueltos por JOIN (solo lectura).
	SupplierDoc  string
	SupplierName string
	SupplierType string

	Lines []StockLine
}

// TaxInclusive indica si la entrada se registró con IGV incluido.
// Se deriva del monto: el esquema original no guarda la bandera.
func (e *StockEntry) TaxInclusive() bool {
	return e.Tax.GreaterThan(decimal.Zero)
}

// StockLine es una línea de entrada (tabla detalle). Pertenece a exactamente
// una cabecera; no tiene ciclo de vida propio.
type StockLine struct {
	ID         int64
	EntryID    int64
	ProductCod string
	Quantity   decimal.Decimal // > 0, fraccional permitido
	UnitCost   decimal.Decimal // > 0 una vez resuelto
	Discount   decimal.Decimal // desc_monto (siempre 0 en entradas)
	Derived    bool            // precio_derivado: costo calculado del monto total

	// Datos resueltos al materializar la entrada (solo lectura).
	Description   string
	Unit          string
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
}

// Subtotal de la línea: cantidad por costo unitario.
func (l *StockLine) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost)
}

// StockEntrySummary es una cabecera con agregados para el listado
// (se calculan en la misma consulta, sin segunda ida a la BD).
type StockEntrySummary struct {
	StockEntry
	LineCount     int
	QuantityTotal decimal.Decimal
}

// StockEntryStats agregados de entradas de los últimos N días.
type StockEntryStats struct {
	Days              int
	EntryCount        int
	AmountPaidTotal   decimal.Decimal
	AmountPaidAverage decimal.Decimal
	TaxInclusiveCount int
	DistinctSuppliers int
	LineTotal         int
	QuantityTotal     decimal.Decimal
}
