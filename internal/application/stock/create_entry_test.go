package stock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/application/stock"
	"github.com/puntoventa/minimarket-api/internal/domain/ledger"
)

const testUserID = int64(7)

func newUseCase(store *fakeStore) *stock.CreateEntryUseCase {
	return stock.NewCreateEntryUseCase(&fakeTxRunner{store: store})
}

// Entrada con precios explícitos: subtotal exacto, sin IGV, sin derivados,
// y la respuesta trae correlativo, fecha y saldos resultantes.
func TestCreateEntry_PreciosExplicitos(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 3, true)
	cost := decimal.NewFromFloat(10.00)

	resp, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid: decimal.NewFromFloat(50.00),
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(5), UnitCost: &cost},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Num, "el correlativo lo asigna el almacenamiento")
	assert.False(t, resp.Date == "", "la fecha debe venir resuelta en la respuesta")
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromFloat(50.00)))
	assert.True(t, resp.Tax.IsZero())
	require.Len(t, resp.Lines, 1)
	assert.False(t, resp.Lines[0].Derived)
	assert.True(t, resp.Lines[0].PreviousStock.Equal(decimal.NewFromInt(3)))
	assert.True(t, resp.Lines[0].NewStock.Equal(decimal.NewFromInt(8)),
		"el saldo resultante sale de la misma transacción, sin relectura")
	assert.True(t, store.products["P001"].Stock.Equal(decimal.NewFromInt(8)))
	assert.Len(t, store.logs, 1, "la entrada deja rastro en el log de actividad")
}

// Línea sin precio: el costo se deriva del monto pagado y queda marcada.
func TestCreateEntry_CostoDerivado(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)

	resp, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid: decimal.NewFromFloat(100.00),
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].Derived)
	assert.True(t, resp.Lines[0].UnitCost.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromFloat(100.00)))
}

// Mezcla fija + abierta: el restante se reparte y el subtotal cuadra con
// el pagado.
func TestCreateEntry_MixtaFijaYAbierta(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)
	store.addProduct("P002", 0, true)
	cost := decimal.NewFromFloat(5.00)

	resp, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid: decimal.NewFromFloat(40.00),
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(2), UnitCost: &cost},
			{ProductCod: "P002", Quantity: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Lines[1].UnitCost.Equal(decimal.NewFromFloat(10.00)),
		"derivado = (40 - 10) / 3 = 10")
	assert.True(t, resp.Subtotal.Equal(decimal.NewFromFloat(40.00)))
}

// IGV incluido con todo precio fijo: el impuesto es el residuo.
func TestCreateEntry_IGVIncluido(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)
	cost := decimal.NewFromFloat(10.00)

	resp, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid:   decimal.NewFromFloat(59.00),
		TaxInclusive: true,
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(5), UnitCost: &cost},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromFloat(50.00)))
	assert.True(t, resp.Tax.Equal(decimal.NewFromFloat(9.00)))
}

// IGV incluido con costo derivado de una división no exacta (20 / 3): el
// subtotal excede al pagado por 1e-16 de redondeo y la entrada debe
// registrarse igual, con IGV 0.
func TestCreateEntry_IGVIncluidoConCostoDerivadoNoExacto(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)

	resp, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid:   decimal.NewFromInt(20),
		TaxInclusive: true,
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err, "el residuo de redondeo del costo derivado no debe rechazar la entrada")

	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].Derived)
	assert.True(t, resp.Tax.IsZero(), "el residuo colapsa a 0, se obtuvo %s", resp.Tax)
	assert.True(t, store.products["P001"].Stock.Equal(decimal.NewFromInt(3)))
}

// IGV incluido con pagado < subtotal: TaxError y cero efectos.
func TestCreateEntry_TaxErrorSinEfectos(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)
	cost := decimal.NewFromFloat(10.00)

	_, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid:   decimal.NewFromFloat(70.00),
		TaxInclusive: true,
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(8), UnitCost: &cost},
		},
	})

	var taxErr *ledger.TaxError
	require.ErrorAs(t, err, &taxErr)
	assert.Empty(t, store.entries)
	assert.True(t, store.products["P001"].Stock.IsZero())
}

// Producto inexistente o inactivo: ReferenceError nombra TODOS los códigos
// ofensores y no hay escritura alguna.
func TestCreateEntry_ReferenceErrorListaTodos(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)
	store.addProduct("P003", 0, false) // inactivo cuenta como faltante

	_, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid: decimal.NewFromFloat(30.00),
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(1)},
			{ProductCod: "P002", Quantity: decimal.NewFromInt(1)},
			{ProductCod: "P003", Quantity: decimal.NewFromInt(1)},
		},
	})

	var refErr *ledger.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, []string{"P002", "P003"}, refErr.MissingProducts)
	assert.Empty(t, store.entries)
	assert.Empty(t, store.lines)
}

// Proveedor inexistente también es ReferenceError.
func TestCreateEntry_ProveedorInexistente(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)
	supplierID := int64(99)

	_, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		SupplierID: &supplierID,
		AmountPaid: decimal.NewFromFloat(30.00),
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(1)},
		},
	})

	var refErr *ledger.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.True(t, refErr.MissingSupplier)
	assert.Equal(t, int64(99), refErr.SupplierID)
}

// Atomicidad: si la persistencia falla después de pasar referencias, no
// queda cabecera, ni línea, ni cambio de stock observable.
func TestCreateEntry_RollbackTotalAnteFalloDePersistencia(t *testing.T) {
	for _, failOn := range []string{"header", "line", "increment", "log"} {
		t.Run(failOn, func(t *testing.T) {
			store := newFakeStore()
			store.addProduct("P001", 5, true)
			store.addProduct("P002", 5, true)
			store.failOn = failOn
			cost := decimal.NewFromFloat(2.00)

			_, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
				AmountPaid: decimal.NewFromFloat(20.00),
				Lines: []dto.CreateEntryLineRequest{
					{ProductCod: "P001", Quantity: decimal.NewFromInt(5), UnitCost: &cost},
					{ProductCod: "P002", Quantity: decimal.NewFromInt(5), UnitCost: &cost},
				},
			})

			var storageErr *ledger.StorageError
			require.ErrorAs(t, err, &storageErr)
			assert.Empty(t, store.entries, "sin cabecera tras rollback")
			assert.Empty(t, store.lines, "sin líneas tras rollback")
			assert.Empty(t, store.logs, "sin log tras rollback")
			assert.True(t, store.products["P001"].Stock.Equal(decimal.NewFromInt(5)),
				"el stock no debe moverse tras rollback")
			assert.True(t, store.products["P002"].Stock.Equal(decimal.NewFromInt(5)))
		})
	}
}

// Dos entradas concurrentes sobre el mismo producto: el saldo final es la
// suma de ambas cantidades, sin actualización perdida, y los correlativos
// no se repiten.
func TestCreateEntry_ConcurrenciaSinActualizacionPerdida(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)
	uc := newUseCase(store)

	const goroutines = 8
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cost := decimal.NewFromFloat(1.00)
			_, err := uc.CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
				AmountPaid: decimal.NewFromFloat(10.00),
				Lines: []dto.CreateEntryLineRequest{
					{ProductCod: "P001", Quantity: decimal.NewFromInt(10), UnitCost: &cost},
				},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, store.products["P001"].Stock.Equal(decimal.NewFromInt(10*goroutines)),
		"el saldo final debe ser la suma de todas las entradas")

	nums := make(map[int64]bool)
	for _, e := range store.entries {
		assert.False(t, nums[e.Num], "correlativo repetido: %d", e.Num)
		nums[e.Num] = true
	}
}

// Los códigos llegan con espacios: se normalizan antes de verificar
// referencias y persistir.
func TestCreateEntry_NormalizaCodigos(t *testing.T) {
	store := newFakeStore()
	store.addProduct("P001", 0, true)
	cost := decimal.NewFromFloat(3.00)

	resp, err := newUseCase(store).CreateEntry(context.Background(), testUserID, dto.CreateEntryRequest{
		AmountPaid: decimal.NewFromFloat(9.00),
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "  P001  ", Quantity: decimal.NewFromInt(3), UnitCost: &cost},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "P001", resp.Lines[0].ProductCod)
}
