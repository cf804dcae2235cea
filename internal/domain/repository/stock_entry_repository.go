package repository

import (
	"time"

	"github.com/puntoventa/minimarket-api/internal/domain/entity"
)

// StockEntryFilter filtros del listado del ledger de entradas.
// El orden es fijo (fecha DESC, num DESC); este recurso no expone
// whitelist de ordenamiento.
type StockEntryFilter struct {
	Search       string // número de entrada, nombre o doc del proveedor
	SupplierID   int64  // 0 = sin filtro
	DateFrom     *time.Time
	DateTo       *time.Time // inclusivo
	TaxInclusive *bool
	Limit        int
	Offset       int
}

// StockEntryRepository puerto de persistencia del ledger de entradas.
// CreateHeader y CreateLine solo tienen sentido dentro de la transacción
// del TxRunner: una entrada jamás se persiste parcialmente.
type StockEntryRepository interface {
	// CreateHeader inserta la cabecera; la BD asigna ID, Num (correlativo
	// estrictamente creciente) y Date, que quedan escritos en la entidad.
	CreateHeader(entry *entity.StockEntry) error

	// CreateLine inserta una línea de la entrada; la BD asigna su ID.
	CreateLine(line *entity.StockLine) error

	// List devuelve la página de entradas con sus agregados (cantidad de
	// líneas, total de unidades) y el total de filas sin paginar.
	List(filter StockEntryFilter) ([]*entity.StockEntrySummary, int, error)

	// GetByID devuelve la entrada con sus líneas y el stock actual de cada
	// producto; nil si no existe.
	GetByID(id int64) (*entity.StockEntry, error)

	// Stats agrega las entradas de los últimos days días.
	Stats(days int) (*entity.StockEntryStats, error)
}
