package usecase

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// Límites de paginación del catálogo (mismos que el ledger).
const (
	productDefaultLimit = 25
	productMinLimit     = 5
	productMaxLimit     = 100
	productMinSearchLen = 2
)

// ProductUseCase casos de uso CRUD del catálogo. El stock no se edita por
// aquí; solo lo mueven las entradas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. El stock inicia en 0 y el producto activo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	cod := strings.TrimSpace(in.Cod)
	if cod == "" || strings.TrimSpace(in.Description) == "" || in.SubfamilyID < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCod(cod)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = "UND"
	}
	product := &entity.Product{
		Cod:           cod,
		SubfamilyID:   in.SubfamilyID,
		Description:   strings.TrimSpace(in.Description),
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Unit:          unit,
		Stock:         decimal.Zero,
		Active:        true,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(&entity.ProductListItem{Product: *product}), nil
}

// GetByCod obtiene un producto con su taxonomía resuelta.
func (uc *ProductUseCase) GetByCod(cod string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCod(strings.TrimSpace(cod))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista el catálogo con búsqueda, filtros y orden.
func (uc *ProductUseCase) List(q dto.ListProductsQuery) (*dto.ListProductsResponse, error) {
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

	filter := repository.ProductFilter{
		SubfamilyID: q.SubfamilyID,
		SortBy:      q.SortBy,
		SortDesc:    q.SortDir == "desc",
		Limit:       limit,
		Offset:      (page - 1) * limit,
	}
	if len(q.Search) >= productMinSearchLen {
		filter.Search = q.Search
	}
	switch q.Active {
	case "true":
		v := true
		filter.Active = &v
	case "false":
		v := false
		filter.Active = &v
	}

	items, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(items))
	for _, it := range items {
		products = append(products, *toProductResponse(it))
	}
	return &dto.ListProductsResponse{
		Products:   products,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// Update actualiza los datos editables del producto. El stock queda fuera.
func (uc *ProductUseCase) Update(cod string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByCod(strings.TrimSpace(cod))
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := current.Product
	if in.SubfamilyID > 0 {
		product.SubfamilyID = in.SubfamilyID
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		product.Description = desc
	}
	product.PurchasePrice = in.PurchasePrice
	product.SalePrice = in.SalePrice
	if unit := strings.TrimSpace(in.Unit); unit != "" {
		product.Unit = unit
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if err := uc.repo.Update(&product); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByCod(product.Cod)
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto sin historial. Con líneas de entrada que lo
// referencien devuelve domain.ErrInUse; el camino correcto es desactivarlo.
func (uc *ProductUseCase) Delete(cod string) error {
	cod = strings.TrimSpace(cod)
	product, err := uc.repo.GetByCod(cod)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.repo.HasLedgerLines(cod)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrInUse
	}
	return uc.repo.Delete(cod)
}

func toProductResponse(p *entity.ProductListItem) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		Cod:           p.Cod,
		SubfamilyID:   p.SubfamilyID,
		SubfamilyName: p.SubfamilyName,
		FamilyName:    p.FamilyName,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Unit:          p.Unit,
		Stock:         p.Stock,
		Active:        p.Active,
	}
}
