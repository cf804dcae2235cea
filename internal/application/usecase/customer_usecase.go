package usecase

import (
	"strings"

	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD de clientes/proveedores.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func validCustomerType(t string) bool {
	return t == "PERSONA" || t == "EMPRESA"
}

// Create registra un cliente. El documento es único.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	doc := strings.TrimSpace(in.Doc)
	name := strings.TrimSpace(in.Name)
	if doc == "" || name == "" || !validCustomerType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDoc(doc)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{
		Doc:     doc,
		Name:    name,
		Address: strings.TrimSpace(in.Address),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Type:    in.Type,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(id int64) (*dto.CustomerResponse, error) {
	if id < 1 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// GetByDoc obtiene un cliente por su documento exacto. Lo usa la caja
// rápida del frontend para autocompletar el proveedor.
func (uc *CustomerUseCase) GetByDoc(doc string) (*dto.CustomerResponse, error) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByDoc(doc)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con búsqueda por doc/nombre/email y filtro por tipo.
func (uc *CustomerUseCase) List(q dto.ListCustomersQuery) (*dto.ListCustomersResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit == 0 {
		limit = productDefaultLimit
	}
	if limit < productMinLimit {
		limit = productMinLimit
	}
	if limit > productMaxLimit {
		limit = productMaxLimit
	}

	filter := repository.CustomerFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if len(q.Search) >= productMinSearchLen {
		filter.Search = q.Search
	}
	if validCustomerType(q.Type) {
		filter.Type = q.Type
	}

	items, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	customers := make([]dto.CustomerResponse, 0, len(items))
	for _, c := range items {
		customers = append(customers, *toCustomerResponse(c))
	}
	return &dto.ListCustomersResponse{
		Customers:  customers,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// Update actualiza los datos del cliente. Cambiar el doc a uno ya tomado
// devuelve domain.ErrDuplicate.
func (uc *CustomerUseCase) Update(id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	doc := strings.TrimSpace(in.Doc)
	name := strings.TrimSpace(in.Name)
	if doc == "" || name == "" || !validCustomerType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if doc != customer.Doc {
		other, err := uc.repo.GetByDoc(doc)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	customer.Doc = doc
	customer.Name = name
	customer.Address = strings.TrimSpace(in.Address)
	customer.Phone = strings.TrimSpace(in.Phone)
	customer.Email = strings.TrimSpace(in.Email)
	customer.Type = in.Type
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente sin entradas asociadas; con entradas devuelve
// domain.ErrInUse para no romper el historial del ledger.
func (uc *CustomerUseCase) Delete(id int64) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.repo.HasEntries(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrInUse
	}
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:      c.ID,
		Doc:     c.Doc,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		Type:    c.Type,
	}
}
