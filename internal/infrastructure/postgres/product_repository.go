package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Campos ordenables del catálogo; cualquier otro valor cae al default.
var productSortFields = map[string]string{
	"cod":         "p.cod",
	"descripcion": "p.descripcion",
	"p_compra":    "p.p_compra",
	"p_venta":     "p.p_venta",
	"stock":       "p.stock",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. Stock inicia en 0.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO producto (cod, sub_id, descripcion, p_compra, p_venta, unidad, stock, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.Cod, product.SubfamilyID, product.Description,
		product.PurchasePrice, product.SalePrice, product.Unit,
		product.Stock, product.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // subfamilia inexistente
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByCod obtiene un producto con su taxonomía resuelta; nil si no existe.
func (r *ProductRepo) GetByCod(cod string) (*entity.ProductListItem, error) {
	query := `
		SELECT p.cod, p.sub_id, p.descripcion, p.p_compra, p.p_venta, p.unidad, p.stock, p.activo,
		       s.nom, f.nom
		FROM producto p
		JOIN subfamilia s ON s.id = p.sub_id
		JOIN familia f ON f.id = s.fam_id
		WHERE p.cod = $1`
	var p entity.ProductListItem
	err := r.q.QueryRow(context.Background(), query, cod).Scan(
		&p.Cod, &p.SubfamilyID, &p.Description, &p.PurchasePrice, &p.SalePrice,
		&p.Unit, &p.Stock, &p.Active, &p.SubfamilyName, &p.FamilyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista el catálogo con búsqueda, filtros y orden con whitelist.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.ProductListItem, int, error) {
	var b condBuilder
	if filter.Search != "" {
		p := b.arg(searchPattern(filter.Search))
		b.cond(fmt.Sprintf("(p.cod ILIKE %s OR unaccent(p.descripcion) ILIKE %s)", p, p))
	}
	if filter.SubfamilyID > 0 {
		b.cond("p.sub_id = " + b.arg(filter.SubfamilyID))
	}
	if filter.Active != nil {
		b.cond("p.activo = " + b.arg(*filter.Active))
	}

	from := `
		FROM producto p
		JOIN subfamilia s ON s.id = p.sub_id
		JOIN familia f ON f.id = s.fam_id`

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*)`+from+b.where(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	orderBy, ok := productSortFields[filter.SortBy]
	if !ok {
		orderBy = "p.descripcion"
	}
	dir := "ASC"
	if filter.SortDesc {
		dir = "DESC"
	}

	query := `
		SELECT p.cod, p.sub_id, p.descripcion, p.p_compra, p.p_venta, p.unidad, p.stock, p.activo,
		       s.nom, f.nom` + from + b.where() +
		fmt.Sprintf(" ORDER BY %s %s, p.cod ASC", orderBy, dir) +
		` LIMIT ` + b.arg(filter.Limit) + ` OFFSET ` + b.arg(filter.Offset)

	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductListItem
	for rows.Next() {
		var p entity.ProductListItem
		if err := rows.Scan(
			&p.Cod, &p.SubfamilyID, &p.Description, &p.PurchasePrice, &p.SalePrice,
			&p.Unit, &p.Stock, &p.Active, &p.SubfamilyName, &p.FamilyName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// Update actualiza los datos editables del producto. El stock queda fuera:
// solo lo muta IncrementStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE producto
		SET sub_id = $2, descripcion = $3, p_compra = $4, p_venta = $5, unidad = $6, activo = $7
		WHERE cod = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.Cod, product.SubfamilyID, product.Description,
		product.PurchasePrice, product.SalePrice, product.Unit, product.Active,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por código.
func (r *ProductRepo) Delete(cod string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM producto WHERE cod = $1`, cod)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// FindActiveByCodes devuelve los productos activos cuyos códigos estén en la
// lista; los ausentes no existen o están inactivos.
func (r *ProductRepo) FindActiveByCodes(codes []string) ([]*entity.Product, error) {
	query := `
		SELECT cod, sub_id, descripcion, p_compra, p_venta, unidad, stock, activo
		FROM producto
		WHERE cod = ANY($1) AND activo`
	rows, err := r.q.Query(context.Background(), query, codes)
	if err != nil {
		return nil, fmt.Errorf("find productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.Cod, &p.SubfamilyID, &p.Description, &p.PurchasePrice,
			&p.SalePrice, &p.Unit, &p.Stock, &p.Active,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// IncrementStock suma delta al saldo de forma atómica y devuelve el saldo
// resultante. Dos entradas concurrentes sobre el mismo producto serializan
// en el lock de fila; no hay actualización perdida.
func (r *ProductRepo) IncrementStock(cod string, delta decimal.Decimal) (decimal.Decimal, error) {
	var stock decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`UPDATE producto SET stock = stock + $2 WHERE cod = $1 RETURNING stock`,
		cod, delta,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("increment stock: %w", err)
	}
	return stock, nil
}

// HasLedgerLines indica si existen líneas de entrada que referencien al
// producto.
func (r *ProductRepo) HasLedgerLines(cod string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM detalle WHERE producto_cod = $1)`, cod,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check detalle: %w", err)
	}
	return exists, nil
}
