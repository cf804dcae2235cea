package stock

import (
	"context"

	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la creación de
// entradas: o se confirma todo (cabecera, líneas, incrementos de stock,
// log) o no queda nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		logRepo repository.ActivityLogRepository,
	) error) error
}

// VoucherGenerator produce el comprobante imprimible de una entrada.
type VoucherGenerator interface {
	GenerateEntryVoucher(entry *entity.StockEntry) ([]byte, error)
}
