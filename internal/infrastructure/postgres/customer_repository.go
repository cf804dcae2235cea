package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL
// (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create registra un cliente. El doc es único.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO cliente (doc, nom, dir, telefono, email, tipo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		customer.Doc, customer.Name, customer.Address,
		customer.Phone, customer.Email, customer.Type,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente; nil si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByDoc obtiene un cliente por documento; nil si no existe.
func (r *CustomerRepo) GetByDoc(doc string) (*entity.Customer, error) {
	return r.getOne(`WHERE doc = $1`, doc)
}

func (r *CustomerRepo) getOne(where string, arg any) (*entity.Customer, error) {
	query := `SELECT id, doc, nom, dir, telefono, email, tipo FROM cliente ` + where
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Doc, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes con búsqueda por doc/nombre/email y filtro por tipo.
func (r *CustomerRepo) List(filter repository.CustomerFilter) ([]*entity.Customer, int, error) {
	var b condBuilder
	if filter.Search != "" {
		p := b.arg(searchPattern(filter.Search))
		b.cond(fmt.Sprintf("(doc ILIKE %s OR unaccent(nom) ILIKE %s OR email ILIKE %s)", p, p, p))
	}
	if filter.Type != "" {
		b.cond("tipo = " + b.arg(filter.Type))
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM cliente`+b.where(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}

	query := `SELECT id, doc, nom, dir, telefono, email, tipo FROM cliente` +
		b.where() + ` ORDER BY nom ASC LIMIT ` + b.arg(filter.Limit) + ` OFFSET ` + b.arg(filter.Offset)
	rows, err := r.q.Query(context.Background(), query, b.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Doc, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Type); err != nil {
			return nil, 0, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Update actualiza los datos del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE cliente
		SET doc = $2, nom = $3, dir = $4, telefono = $5, email = $6, tipo = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Doc, customer.Name, customer.Address,
		customer.Phone, customer.Email, customer.Type,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por id.
func (r *CustomerRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cliente WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// HasEntries indica si el cliente figura como proveedor en alguna entrada.
func (r *CustomerRepo) HasEntries(id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM compra WHERE cli_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check compras: %w", err)
	}
	return exists, nil
}
