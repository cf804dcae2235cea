package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones registradas en log_actividad.
const (
	ActionLogin      = "LOGIN"
	ActionStockEntry = "ENTRADA_STOCK"

	CategoryAuth      = "AUTENTICACION"
	CategoryInventory = "INVENTARIO"
	CategoryCustomers = "CLIENTES"
)

// ActivityLog registro de auditoría (tabla log_actividad).
type ActivityLog struct {
	ID          string // uuid
	UserID      int64
	Action      string
	Category    string
	Description string
	Amount      *decimal.Decimal // monto asociado, si aplica
	CreatedAt   time.Time
}
