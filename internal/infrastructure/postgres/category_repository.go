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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// ListFamilies lista las familias ordenadas por nombre.
func (r *CategoryRepo) ListFamilies() ([]*entity.Family, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, nom FROM familia ORDER BY nom`)
	if err != nil {
		return nil, fmt.Errorf("list familias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Family
	for rows.Next() {
		var f entity.Family
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("scan familia: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// GetFamily obtiene una familia; nil si no existe.
func (r *CategoryRepo) GetFamily(id int64) (*entity.Family, error) {
	var f entity.Family
	err := r.q.QueryRow(context.Background(), `SELECT id, nom FROM familia WHERE id = $1`, id).
		Scan(&f.ID, &f.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get familia: %w", err)
	}
	return &f, nil
}

// GetFamilyByName obtiene una familia por nombre exacto; nil si no existe.
func (r *CategoryRepo) GetFamilyByName(name string) (*entity.Family, error) {
	var f entity.Family
	err := r.q.QueryRow(context.Background(), `SELECT id, nom FROM familia WHERE nom = $1`, name).
		Scan(&f.ID, &f.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get familia por nombre: %w", err)
	}
	return &f, nil
}

// CreateFamily crea una familia; la BD asigna el id.
func (r *CategoryRepo) CreateFamily(family *entity.Family) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO familia (nom) VALUES ($1) RETURNING id`, family.Name,
	).Scan(&family.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert familia: %w", err)
	}
	return nil
}

// UpdateFamily renombra una familia.
func (r *CategoryRepo) UpdateFamily(family *entity.Family) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE familia SET nom = $2 WHERE id = $1`, family.ID, family.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update familia: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteFamily elimina una familia sin subfamilias; con hijas devuelve
// domain.ErrInUse.
func (r *CategoryRepo) DeleteFamily(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM familia WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete familia: %w", err)
	}
	return nil
}

// ListSubfamilies lista subfamilias con su familia y conteo de productos
// activos, todo en una consulta.
func (r *CategoryRepo) ListSubfamilies() ([]*entity.Subfamily, error) {
	query := `
		SELECT s.id, s.fam_id, s.nom, f.nom,
		       COUNT(p.cod) FILTER (WHERE p.activo)
		FROM subfamilia s
		JOIN familia f ON f.id = s.fam_id
		LEFT JOIN producto p ON p.sub_id = s.id
		GROUP BY s.id, f.nom
		ORDER BY f.nom, s.nom`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list subfamilias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Subfamily
	for rows.Next() {
		var s entity.Subfamily
		if err := rows.Scan(&s.ID, &s.FamilyID, &s.Name, &s.FamilyName, &s.ProductCount); err != nil {
			return nil, fmt.Errorf("scan subfamilia: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetSubfamily obtiene una subfamilia con su familia; nil si no existe.
func (r *CategoryRepo) GetSubfamily(id int64) (*entity.Subfamily, error) {
	query := `
		SELECT s.id, s.fam_id, s.nom, f.nom
		FROM subfamilia s
		JOIN familia f ON f.id = s.fam_id
		WHERE s.id = $1`
	var s entity.Subfamily
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&s.ID, &s.FamilyID, &s.Name, &s.FamilyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subfamilia: %w", err)
	}
	return &s, nil
}

// CreateSubfamily crea una subfamilia; la BD asigna el id.
func (r *CategoryRepo) CreateSubfamily(subfamily *entity.Subfamily) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO subfamilia (fam_id, nom) VALUES ($1, $2) RETURNING id`,
		subfamily.FamilyID, subfamily.Name,
	).Scan(&subfamily.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert subfamilia: %w", err)
	}
	return nil
}

// UpdateSubfamily renombra una subfamilia o la mueve de familia.
func (r *CategoryRepo) UpdateSubfamily(subfamily *entity.Subfamily) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE subfamilia SET fam_id = $2, nom = $3 WHERE id = $1`,
		subfamily.ID, subfamily.FamilyID, subfamily.Name,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update subfamilia: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteSubfamily elimina una subfamilia sin productos; con productos
// devuelve domain.ErrInUse.
func (r *CategoryRepo) DeleteSubfamily(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subfamilia WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete subfamilia: %w", err)
	}
	return nil
}
