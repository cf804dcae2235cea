package repository

import "github.com/puntoventa/minimarket-api/internal/domain/entity"

// CategoryRepository puerto de persistencia de la taxonomía
// familia/subfamilia.
type CategoryRepository interface {
	ListFamilies() ([]*entity.Family, error)
	GetFamily(id int64) (*entity.Family, error)
	GetFamilyByName(name string) (*entity.Family, error)
	CreateFamily(family *entity.Family) error
	UpdateFamily(family *entity.Family) error
	// DeleteFamily falla con domain.ErrInUse si tiene subfamilias.
	DeleteFamily(id int64) error

	// ListSubfamilies incluye nombre de familia y conteo de productos
	// activos por subfamilia.
	ListSubfamilies() ([]*entity.Subfamily, error)
	GetSubfamily(id int64) (*entity.Subfamily, error)
	CreateSubfamily(subfamily *entity.Subfamily) error
	UpdateSubfamily(subfamily *entity.Subfamily) error
	// DeleteSubfamily falla con domain.ErrInUse si tiene productos.
	DeleteSubfamily(id int64) error
}
