package stock

import (
	"context"
	"fmt"

	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// VoucherUseCase genera el comprobante PDF de una entrada ya registrada.
type VoucherUseCase struct {
	entryRepo repository.StockEntryRepository
	generator VoucherGenerator
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(entryRepo repository.StockEntryRepository, generator VoucherGenerator) *VoucherUseCase {
	return &VoucherUseCase{entryRepo: entryRepo, generator: generator}
}

// GenerateVoucher devuelve el PDF del comprobante y un nombre de archivo
// sugerido. domain.ErrNotFound si la entrada no existe.
func (uc *VoucherUseCase) GenerateVoucher(ctx context.Context, id int64) ([]byte, string, error) {
	if id < 1 {
		return nil, "", domain.ErrInvalidInput
	}
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if entry == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateEntryVoucher(entry)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("entrada-%d.pdf", entry.Num), nil
}
