package repository

import (
	"github.com/shopspring/decimal"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search      string // cod o descripción, parcial
	SubfamilyID int64  // 0 = sin filtro
	Active      *bool
	SortBy      string // whitelist en el adaptador; default descripcion
	SortDesc    bool
	Limit       int
	Offset      int
}

// ProductRepository puerto de persistencia del catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCod(cod string) (*entity.ProductListItem, error)
	List(filter ProductFilter) ([]*entity.ProductListItem, int, error)
	Update(product *entity.Product) error
	Delete(cod string) error

	// FindActiveByCodes devuelve los productos activos cuyos códigos estén en
	// la lista; los códigos ausentes del resultado no existen o están
	// inactivos. Es la verificación de referencias del ledger.
	FindActiveByCodes(codes []string) ([]*entity.Product, error)

	// IncrementStock suma delta al saldo del producto de forma atómica en la
	// BD (UPDATE ... SET stock = stock + delta RETURNING stock) y devuelve el
	// saldo resultante. Es la única mutación de stock que dispara el ledger.
	IncrementStock(cod string, delta decimal.Decimal) (decimal.Decimal, error)

	// HasLedgerLines indica si existen líneas de entrada que referencien al
	// producto (bloquea su eliminación).
	HasLedgerLines(cod string) (bool, error)
}
