package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/ledger"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// CreateEntryUseCase coordina la creación atómica de una entrada de stock:
// validación → verificación de referencias → derivación de precios e IGV →
// persistencia (cabecera, líneas, incrementos de stock, log) en una sola
// transacción con Commit/Rollback.
type CreateEntryUseCase struct {
	txRunner TxRunner
}

// NewCreateEntryUseCase construye el caso de uso.
func NewCreateEntryUseCase(txRunner TxRunner) *CreateEntryUseCase {
	return &CreateEntryUseCase{txRunner: txRunner}
}

// CreateEntry registra la entrada y devuelve la entrada completamente
// materializada: correlativo, fecha, costos resueltos y saldos de stock
// resultantes salen de la misma transacción, nunca de una relectura.
//
// Errores: ledger.ValidationError (request malformado), ledger.ReferenceError
// (producto/proveedor inexistente, lista todos los códigos), ledger.PricingError,
// ledger.TaxError, ledger.StorageError (fallo al persistir; rollback total).
// Ninguno deja efectos en la BD.
func (uc *CreateEntryUseCase) CreateEntry(ctx context.Context, userID int64, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	if err := ValidateEntry(in); err != nil {
		return nil, err
	}

	// Normalizar códigos una sola vez; la validación garantiza unicidad.
	lineInputs := make([]ledger.LineInput, len(in.Lines))
	codes := make([]string, len(in.Lines))
	for i, line := range in.Lines {
		cod := strings.TrimSpace(line.ProductCod)
		codes[i] = cod
		lineInputs[i] = ledger.LineInput{
			ProductCod: cod,
			Quantity:   line.Quantity,
			UnitCost:   line.UnitCost,
		}
	}

	var resp *dto.EntryResponse
	err := uc.txRunner.Run(ctx, func(
		entryRepo repository.StockEntryRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
		logRepo repository.ActivityLogRepository,
	) error {
		// Verificación de referencias: todos los productos activos y, si se
		// indicó, el proveedor. Se reportan TODOS los códigos faltantes.
		found, err := productRepo.FindActiveByCodes(codes)
		if err != nil {
			return &ledger.StorageError{Err: err}
		}
		byCod := make(map[string]*entity.Product, len(found))
		for _, p := range found {
			byCod[p.Cod] = p
		}
		refErr := &ledger.ReferenceError{}
		for _, cod := range codes {
			if byCod[cod] == nil {
				refErr.MissingProducts = append(refErr.MissingProducts, cod)
			}
		}

		var supplier *entity.Customer
		if in.SupplierID != nil {
			supplier, err = customerRepo.GetByID(*in.SupplierID)
			if err != nil {
				return &ledger.StorageError{Err: err}
			}
			if supplier == nil {
				refErr.MissingSupplier = true
				refErr.SupplierID = *in.SupplierID
			}
		}
		if len(refErr.MissingProducts) > 0 || refErr.MissingSupplier {
			return refErr
		}

		// Derivación de costos abiertos y reparto del IGV (en memoria).
		resolved, err := ledger.ResolveUnitCosts(lineInputs, in.AmountPaid)
		if err != nil {
			return err
		}
		subtotal := ledger.SubtotalOf(resolved)
		tax, err := ledger.AllocateTax(subtotal, in.AmountPaid, in.TaxInclusive)
		if err != nil {
			return err
		}

		// Cabecera: la BD asigna correlativo y fecha al insertar.
		entry := &entity.StockEntry{
			SupplierID:    in.SupplierID,
			DocType:       entity.DocTypeBoleta,
			OperationType: entity.OperationStockIn,
			Subtotal:      subtotal,
			Tax:           tax,
			DiscountTotal: decimal.Zero,
			AmountPaid:    in.AmountPaid,
			Note:          strings.TrimSpace(in.Note),
			UserID:        userID,
		}
		if err := entryRepo.CreateHeader(entry); err != nil {
			return &ledger.StorageError{Err: err}
		}

		lines := make([]dto.EntryLineResponse, 0, len(resolved))
		quantityTotal := decimal.Zero
		for _, rl := range resolved {
			line := &entity.StockLine{
				EntryID:    entry.ID,
				ProductCod: rl.ProductCod,
				Quantity:   rl.Quantity,
				UnitCost:   rl.UnitCost,
				Discount:   decimal.Zero,
				Derived:    rl.Derived,
			}
			if err := entryRepo.CreateLine(line); err != nil {
				return &ledger.StorageError{Err: err}
			}
			// Incremento atómico del saldo, en la misma tx que la línea.
			newStock, err := productRepo.IncrementStock(rl.ProductCod, rl.Quantity)
			if err != nil {
				return &ledger.StorageError{Err: err}
			}

			product := byCod[rl.ProductCod]
			lines = append(lines, dto.EntryLineResponse{
				ID:            line.ID,
				ProductCod:    rl.ProductCod,
				Description:   product.Description,
				Quantity:      rl.Quantity,
				UnitCost:      rl.UnitCost,
				Derived:       rl.Derived,
				Subtotal:      rl.Subtotal(),
				Unit:          product.Unit,
				PreviousStock: newStock.Sub(rl.Quantity),
				NewStock:      newStock,
			})
			quantityTotal = quantityTotal.Add(rl.Quantity)
		}

		if err := logRepo.Create(buildEntryLog(userID, entry, supplier, len(lines))); err != nil {
			return &ledger.StorageError{Err: err}
		}

		resp = &dto.EntryResponse{
			ID:            entry.ID,
			Num:           entry.Num,
			Date:          entry.Date.Format(time.RFC3339),
			SupplierID:    entry.SupplierID,
			Note:          entry.Note,
			Subtotal:      subtotal,
			Tax:           tax,
			AmountPaid:    in.AmountPaid,
			TaxInclusive:  in.TaxInclusive,
			Lines:         lines,
			LineCount:     len(lines),
			QuantityTotal: quantityTotal,
		}
		if supplier != nil {
			resp.SupplierDoc = supplier.Doc
			resp.SupplierName = supplier.Name
		}
		return nil
	})
	if err != nil {
		return nil, asLedgerError(err)
	}
	return resp, nil
}

// buildEntryLog arma el registro de auditoría de la entrada.
func buildEntryLog(userID int64, entry *entity.StockEntry, supplier *entity.Customer, lineCount int) *entity.ActivityLog {
	supplierName := "Sin proveedor"
	if supplier != nil {
		supplierName = supplier.Name
	}
	desc := fmt.Sprintf("Entrada #%d - %d productos - %s", entry.Num, lineCount, supplierName)
	if entry.Note != "" {
		desc += " - " + entry.Note
	}
	amount := entry.AmountPaid
	return &entity.ActivityLog{
		ID:          uuid.New().String(),
		UserID:      userID,
		Action:      entity.ActionStockEntry,
		Category:    entity.CategoryInventory,
		Description: desc,
		Amount:      &amount,
	}
}

// asLedgerError deja pasar los errores tipados del ledger y envuelve
// cualquier otro (begin/commit, caídas de conexión) como StorageError:
// a ese punto la transacción ya fue revertida.
func asLedgerError(err error) error {
	var (
		vErr *ledger.ValidationError
		rErr *ledger.ReferenceError
		pErr *ledger.PricingError
		tErr *ledger.TaxError
		sErr *ledger.StorageError
	)
	switch {
	case errors.As(err, &vErr), errors.As(err, &rErr),
		errors.As(err, &pErr), errors.As(err, &tErr),
		errors.As(err, &sErr):
		return err
	default:
		return &ledger.StorageError{Err: err}
	}
}
