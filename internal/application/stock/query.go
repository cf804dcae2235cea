package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// Límites de paginación del ledger.
const (
	defaultLimit = 25
	minLimit     = 5
	maxLimit     = 100

	minSearchLen = 2
	dateLayout   = "2006-01-02"

	defaultStatsDays = 30
	maxStatsDays     = 365
)

// QueryUseCase acceso de lectura al ledger: listado paginado/filtrado,
// lectura puntual y resumen estadístico. Usa los repositorios sobre el pool
// (sin transacción; son consultas).
type QueryUseCase struct {
	entryRepo repository.StockEntryRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(entryRepo repository.StockEntryRepository) *QueryUseCase {
	return &QueryUseCase{entryRepo: entryRepo}
}

// ListEntries lista entradas con orden fijo (fecha DESC, num DESC),
// agregados por entrada y metadatos de paginación.
func (uc *QueryUseCase) ListEntries(ctx context.Context, q dto.ListEntriesQuery) (*dto.ListEntriesResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < minLimit {
		limit = minLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := repository.StockEntryFilter{
		SupplierID: q.SupplierID,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	// Búsquedas muy cortas se ignoran (mismo umbral que el cliente original).
	if len(q.Search) >= minSearchLen {
		filter.Search = q.Search
	}
	if q.DateFrom != "" {
		from, err := time.Parse(dateLayout, q.DateFrom)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, err := time.Parse(dateLayout, q.DateTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.DateTo = &to
	}
	switch q.TaxInclusive {
	case "true":
		v := true
		filter.TaxInclusive = &v
	case "false":
		v := false
		filter.TaxInclusive = &v
	}

	items, total, err := uc.entryRepo.List(filter)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.EntryListItem, 0, len(items))
	for _, it := range items {
		entries = append(entries, dto.EntryListItem{
			ID:            it.ID,
			Num:           it.Num,
			Date:          it.Date.Format(time.RFC3339),
			SupplierID:    it.SupplierID,
			SupplierDoc:   it.SupplierDoc,
			SupplierName:  it.SupplierName,
			SupplierType:  it.SupplierType,
			Subtotal:      it.Subtotal,
			Tax:           it.Tax,
			AmountPaid:    it.AmountPaid,
			TaxInclusive:  it.TaxInclusive(),
			LineCount:     it.LineCount,
			QuantityTotal: it.QuantityTotal,
		})
	}
	return &dto.ListEntriesResponse{
		Entries:    entries,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// GetEntry devuelve una entrada con sus líneas y el stock actual de cada
// producto. domain.ErrNotFound si no existe.
func (uc *QueryUseCase) GetEntry(ctx context.Context, id int64) (*dto.EntryResponse, error) {
	if id < 1 {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toEntryResponse(entry), nil
}

// Stats agrega las entradas de los últimos N días (1..365, default 30).
func (uc *QueryUseCase) Stats(ctx context.Context, days int) (*dto.EntryStatsResponse, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}
	stats, err := uc.entryRepo.Stats(days)
	if err != nil {
		return nil, err
	}
	resp := &dto.EntryStatsResponse{Period: fmt.Sprintf("Últimos %d días", days)}
	resp.Stats.EntryCount = stats.EntryCount
	resp.Stats.AmountPaidTotal = stats.AmountPaidTotal
	resp.Stats.AmountPaidAverage = stats.AmountPaidAverage
	resp.Stats.TaxInclusiveCount = stats.TaxInclusiveCount
	resp.Stats.DistinctSuppliers = stats.DistinctSuppliers
	resp.Stats.LineTotal = stats.LineTotal
	resp.Stats.QuantityTotal = stats.QuantityTotal
	return resp, nil
}

// toEntryResponse materializa la entrada leída (los saldos anteriores no se
// reconstruyen en lecturas históricas; se expone el stock actual).
func toEntryResponse(entry *entity.StockEntry) *dto.EntryResponse {
	resp := &dto.EntryResponse{
		ID:           entry.ID,
		Num:          entry.Num,
		Date:         entry.Date.Format(time.RFC3339),
		SupplierID:   entry.SupplierID,
		SupplierDoc:  entry.SupplierDoc,
		SupplierName: entry.SupplierName,
		Note:         entry.Note,
		Subtotal:     entry.Subtotal,
		Tax:          entry.Tax,
		AmountPaid:   entry.AmountPaid,
		TaxInclusive: entry.TaxInclusive(),
		LineCount:    len(entry.Lines),
	}
	for _, l := range entry.Lines {
		resp.QuantityTotal = resp.QuantityTotal.Add(l.Quantity)
		resp.Lines = append(resp.Lines, dto.EntryLineResponse{
			ID:          l.ID,
			ProductCod:  l.ProductCod,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			Derived:     l.Derived,
			Subtotal:    l.Subtotal(),
			Unit:        l.Unit,
			NewStock:    l.NewStock,
		})
	}
	return resp
}
