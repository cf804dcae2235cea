package repository

import "github.com/puntoventa/minimarket-api/internal/domain/entity"

// CustomerFilter filtros del listado de clientes/proveedores.
type CustomerFilter struct {
	Search string // doc, nombre o email, parcial
	Type   string // "PERSONA" | "EMPRESA" | "" (todos)
	Limit  int
	Offset int
}

// CustomerRepository puerto de persistencia de clientes/proveedores.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByDoc(doc string) (*entity.Customer, error)
	List(filter CustomerFilter) ([]*entity.Customer, int, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error

	// HasEntries indica si el cliente figura como proveedor en alguna
	// entrada de stock (bloquea su eliminación).
	HasEntries(id int64) (bool, error)
}
