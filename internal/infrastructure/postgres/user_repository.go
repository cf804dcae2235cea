package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// FindByLogin obtiene un usuario por login; nil si no existe.
func (r *UserRepo) FindByLogin(login string) (*entity.User, error) {
	return r.getOne(`WHERE login = $1`, login)
}

// GetByID obtiene un usuario; nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getOne(`WHERE id = $1`, id)
}

func (r *UserRepo) getOne(where string, arg any) (*entity.User, error) {
	query := `SELECT id, login, nombre, email, password, rol, activo FROM usuario ` + where
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Login, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// UpdateLastAccess marca el último acceso del usuario.
func (r *UserRepo) UpdateLastAccess(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuario SET ultimo_acceso = now() WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("update ultimo_acceso: %w", err)
	}
	return nil
}
