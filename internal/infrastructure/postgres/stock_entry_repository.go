package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación del puerto StockEntryRepository sobre
// PostgreSQL (usable con pool o tx).
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// CreateHeader inserta la cabecera. La BD asigna id, num (secuencia propia,
// estrictamente creciente) y fecha; quedan escritos en la entidad.
func (r *StockEntryRepo) CreateHeader(entry *entity.StockEntry) error {
	query := `
		INSERT INTO compra (cli_id, tipo, tipo_operacion, subtotal, igv, desc_total, total, observaciones, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, num, fecha`
	err := r.q.QueryRow(context.Background(), query,
		entry.SupplierID, entry.DocType, entry.OperationType,
		entry.Subtotal, entry.Tax, entry.DiscountTotal, entry.AmountPaid,
		entry.Note, entry.UserID,
	).Scan(&entry.ID, &entry.Num, &entry.Date)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// CreateLine inserta una línea de la entrada; la BD asigna su id.
func (r *StockEntryRepo) CreateLine(line *entity.StockLine) error {
	query := `
		INSERT INTO detalle (compra_id, producto_cod, cantidad, precio, desc_monto, precio_derivado)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.EntryID, line.ProductCod, line.Quantity, line.UnitCost,
		line.Discount, line.Derived,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// List devuelve la página de entradas con agregados por entrada y el total
// de filas sin paginar. Orden fijo: fecha DESC, num DESC.
func (r *StockEntryRepo) List(filter repository.StockEntryFilter) ([]*entity.StockEntrySummary, int, error) {
	var b condBuilder
	b.cond("c.tipo_operacion = " + b.arg(entity.OperationStockIn))
	if filter.Search != "" {
		p := b.arg(searchPattern(filter.Search))
		b.cond(fmt.Sprintf("(c.num::text ILIKE %s OR unaccent(cl.nom) ILIKE %s OR cl.doc ILIKE %s)", p, p, p))
	}
	if filter.SupplierID > 0 {
		b.cond("c.cli_id = " + b.arg(filter.SupplierID))
	}
	if filter.DateFrom != nil {
		b.cond("c.fecha >= " + b.arg(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		b.cond("c.fecha::date <= " + b.arg((*filter.DateTo).Format("2006-01-02")))
	}
	if filter.TaxInclusive != nil {
		if *filter.TaxInclusive {
			b.cond("c.igv > 0")
		} else {
			b.cond("c.igv = 0")
		}
	}

	from := ` FROM compra c LEFT JOIN cliente cl ON cl.id = c.cli_id`

	var total int
	countQuery := `SELECT COUNT(*)` + from + b.where()
	if err := r.q.QueryRow(context.Background(), countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count compras: %w", err)
	}

	query := `
		SELECT c.id, c.num, c.fecha, c.cli_id,
		       COALESCE(cl.doc, ''), COALESCE(cl.nom, ''), COALESCE(cl.tipo, ''),
		       c.subtotal, c.igv, c.desc_total, c.total, c.observaciones, c.usuario_id,
		       COUNT(d.id), COALESCE(SUM(d.cantidad), 0)` + from + `
		LEFT JOIN detalle d ON d.compra_id = c.id` +
		b.where() + `
		GROUP BY c.id, cl.doc, cl.nom, cl.tipo
		ORDER BY c.fecha DESC, c.num DESC
		LIMIT ` + b.arg(filter.Limit) + ` OFFSET ` + b.arg(filter.Offset)

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockEntrySummary
	for rows.Next() {
		var s entity.StockEntrySummary
		if err := rows.Scan(
			&s.ID, &s.Num, &s.Date, &s.SupplierID,
			&s.SupplierDoc, &s.SupplierName, &s.SupplierType,
			&s.Subtotal, &s.Tax, &s.DiscountTotal, &s.AmountPaid, &s.Note, &s.UserID,
			&s.LineCount, &s.QuantityTotal,
		); err != nil {
			return nil, 0, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}

// GetByID devuelve la entrada con sus líneas y el stock actual de cada
// producto; nil si no existe.
func (r *StockEntryRepo) GetByID(id int64) (*entity.StockEntry, error) {
	query := `
		SELECT c.id, c.num, c.fecha, c.cli_id,
		       COALESCE(cl.doc, ''), COALESCE(cl.nom, ''), COALESCE(cl.tipo, ''),
		       c.subtotal, c.igv, c.desc_total, c.total, c.observaciones, c.usuario_id
		FROM compra c
		LEFT JOIN cliente cl ON cl.id = c.cli_id
		WHERE c.id = $1 AND c.tipo_operacion = $2`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, id, entity.OperationStockIn).Scan(
		&e.ID, &e.Num, &e.Date, &e.SupplierID,
		&e.SupplierDoc, &e.SupplierName, &e.SupplierType,
		&e.Subtotal, &e.Tax, &e.DiscountTotal, &e.AmountPaid, &e.Note, &e.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	e.DocType = entity.DocTypeBoleta
	e.OperationType = entity.OperationStockIn

	linesQuery := `
		SELECT d.id, d.compra_id, d.producto_cod, d.cantidad, d.precio, d.desc_monto, d.precio_derivado,
		       p.descripcion, p.unidad, p.stock
		FROM detalle d
		JOIN producto p ON p.cod = d.producto_cod
		WHERE d.compra_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), linesQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list detalle: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.StockLine
		if err := rows.Scan(
			&l.ID, &l.EntryID, &l.ProductCod, &l.Quantity, &l.UnitCost, &l.Discount, &l.Derived,
			&l.Description, &l.Unit, &l.NewStock,
		); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		e.Lines = append(e.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &e, nil
}

// Stats agrega las entradas de los últimos days días en una sola consulta.
func (r *StockEntryRepo) Stats(days int) (*entity.StockEntryStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(c.total), 0),
		       COALESCE(AVG(c.total), 0),
		       COUNT(*) FILTER (WHERE c.igv > 0),
		       COUNT(DISTINCT c.cli_id),
		       COALESCE((SELECT COUNT(*) FROM detalle d
		                 JOIN compra c2 ON c2.id = d.compra_id
		                 WHERE c2.tipo_operacion = $1
		                   AND c2.fecha >= now() - make_interval(days => $2)), 0),
		       COALESCE((SELECT SUM(d.cantidad) FROM detalle d
		                 JOIN compra c2 ON c2.id = d.compra_id
		                 WHERE c2.tipo_operacion = $1
		                   AND c2.fecha >= now() - make_interval(days => $2)), 0)
		FROM compra c
		WHERE c.tipo_operacion = $1
		  AND c.fecha >= now() - make_interval(days => $2)`
	stats := &entity.StockEntryStats{Days: days}
	err := r.q.QueryRow(context.Background(), query, entity.OperationStockIn, days).Scan(
		&stats.EntryCount, &stats.AmountPaidTotal, &stats.AmountPaidAverage,
		&stats.TaxInclusiveCount, &stats.DistinctSuppliers,
		&stats.LineTotal, &stats.QuantityTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("stats compras: %w", err)
	}
	return stats, nil
}
