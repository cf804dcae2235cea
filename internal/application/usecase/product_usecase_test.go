package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/application/usecase"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products   map[string]*entity.ProductListItem
	withLines  map[string]bool
	lastFilter repository.ProductFilter
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:  make(map[string]*entity.ProductListItem),
		withLines: make(map[string]bool),
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.Cod] = &entity.ProductListItem{Product: *p}
	return nil
}

func (r *fakeProductRepo) GetByCod(cod string) (*entity.ProductListItem, error) {
	return r.products[cod], nil
}

func (r *fakeProductRepo) List(f repository.ProductFilter) ([]*entity.ProductListItem, int, error) {
	r.lastFilter = f
	var out []*entity.ProductListItem
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.Cod] = &entity.ProductListItem{Product: *p}
	return nil
}

func (r *fakeProductRepo) Delete(cod string) error {
	delete(r.products, cod)
	return nil
}

func (r *fakeProductRepo) FindActiveByCodes([]string) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) IncrementStock(string, decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeProductRepo) HasLedgerLines(cod string) (bool, error) {
	return r.withLines[cod], nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func TestProductCreate_StockInicialCero(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.Create(dto.CreateProductRequest{
		Cod:         "P001",
		SubfamilyID: 3,
		Description: "Arroz extra 1kg",
		SalePrice:   decimal.NewFromFloat(4.50),
	})
	require.NoError(t, err)
	assert.True(t, resp.Stock.IsZero(), "el stock solo lo mueven las entradas")
	assert.True(t, resp.Active)
	assert.Equal(t, "UND", resp.Unit, "unidad por defecto")
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["P001"] = &entity.ProductListItem{Product: entity.Product{Cod: "P001"}}
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{Cod: "P001", SubfamilyID: 1, Description: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_DatosInvalidos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Cod: " ", SubfamilyID: 1, Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{
		Cod: "P001", SubfamilyID: 1, Description: "x",
		SalePrice: decimal.NewFromFloat(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaStock(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["P001"] = &entity.ProductListItem{Product: entity.Product{
		Cod: "P001", SubfamilyID: 1, Description: "Arroz", Unit: "UND",
		Stock: decimal.NewFromInt(42), Active: true,
	}}
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.Update("P001", dto.UpdateProductRequest{
		Description: "Arroz extra",
		SalePrice:   decimal.NewFromFloat(5.00),
	})
	require.NoError(t, err)
	assert.Equal(t, "Arroz extra", resp.Description)
	assert.True(t, resp.Stock.Equal(decimal.NewFromInt(42)),
		"actualizar el producto no altera el saldo")
}

func TestProductDelete_BloqueadoConHistorial(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products["P001"] = &entity.ProductListItem{Product: entity.Product{Cod: "P001"}}
	repo.withLines["P001"] = true
	uc := usecase.NewProductUseCase(repo)

	err := uc.Delete("P001")
	assert.ErrorIs(t, err, domain.ErrInUse)
	assert.Contains(t, repo.products, "P001", "el producto sigue existiendo")
}

func TestProductList_FiltroActivo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.List(dto.ListProductsQuery{Active: "false", SortDir: "desc"})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Active)
	assert.False(t, *repo.lastFilter.Active)
	assert.True(t, repo.lastFilter.SortDesc)
}
