package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/puntoventa/minimarket-api/internal/domain/ledger"
)

func costPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// Todas las líneas con precio fijo: no hay nada que derivar y los costos
// quedan exactamente como llegaron.
func TestResolveUnitCosts_TodasFijas(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "P001", Quantity: decimal.NewFromInt(5), UnitCost: costPtr(10.00)},
	}
	resolved, err := ledger.ResolveUnitCosts(lines, decimal.NewFromFloat(50.00))
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	assert.False(t, resolved[0].Derived, "una línea con precio explícito no debe marcarse derivada")
	assert.True(t, resolved[0].UnitCost.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, ledger.SubtotalOf(resolved).Equal(decimal.NewFromFloat(50.00)))
}

// Una sola línea abierta: todo el monto pagado se convierte en su costo.
func TestResolveUnitCosts_UnaLineaAbierta(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "P001", Quantity: decimal.NewFromInt(10)},
	}
	resolved, err := ledger.ResolveUnitCosts(lines, decimal.NewFromFloat(100.00))
	require.NoError(t, err)

	assert.True(t, resolved[0].Derived)
	assert.True(t, resolved[0].UnitCost.Equal(decimal.NewFromFloat(10.00)),
		"costo derivado = 100.00 / 10 = 10.00, se obtuvo %s", resolved[0].UnitCost)
	assert.True(t, resolved[0].Subtotal().Equal(decimal.NewFromFloat(100.00)))
}

// Mezcla fija + abierta: el restante tras las fijas se reparte entre las
// abiertas a un costo unitario uniforme.
func TestResolveUnitCosts_MixtaFijaYAbierta(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "P001", Quantity: decimal.NewFromInt(2), UnitCost: costPtr(5.00)},
		{ProductCod: "P002", Quantity: decimal.NewFromInt(3)},
	}
	resolved, err := ledger.ResolveUnitCosts(lines, decimal.NewFromFloat(40.00))
	require.NoError(t, err)

	// restante = 40 - 10 = 30; costo derivado = 30 / 3 = 10
	assert.False(t, resolved[0].Derived)
	assert.True(t, resolved[1].Derived)
	assert.True(t, resolved[1].UnitCost.Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, resolved[1].Subtotal().Equal(decimal.NewFromFloat(30.00)),
		"la suma de subtotales abiertos debe igualar el restante")
}

// Varias líneas abiertas reciben exactamente el MISMO costo unitario
// (reparto por cantidad, no proporcional por línea).
func TestResolveUnitCosts_CostoUniformeEntreAbiertas(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "P001", Quantity: decimal.NewFromInt(2)},
		{ProductCod: "P002", Quantity: decimal.NewFromInt(6)},
	}
	resolved, err := ledger.ResolveUnitCosts(lines, decimal.NewFromFloat(96.00))
	require.NoError(t, err)

	// costo derivado = 96 / 8 = 12 para ambas
	assert.True(t, resolved[0].UnitCost.Equal(resolved[1].UnitCost),
		"todas las líneas abiertas deben compartir el costo derivado")
	assert.True(t, resolved[0].UnitCost.Equal(decimal.NewFromFloat(12.00)))
	assert.True(t, ledger.SubtotalOf(resolved).Equal(decimal.NewFromFloat(96.00)))
}

// Cantidades fraccionales (productos por peso) también reparten bien.
func TestResolveUnitCosts_CantidadFraccional(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "ARROZ", Quantity: decimal.NewFromFloat(2.5)},
	}
	resolved, err := ledger.ResolveUnitCosts(lines, decimal.NewFromFloat(10.00))
	require.NoError(t, err)

	assert.True(t, resolved[0].UnitCost.Equal(decimal.NewFromFloat(4.00)))
}

// Sin valor a distribuir: las fijas consumen todo el monto pagado.
func TestResolveUnitCosts_ErrorSinRestante(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "P001", Quantity: decimal.NewFromInt(4), UnitCost: costPtr(10.00)},
		{ProductCod: "P002", Quantity: decimal.NewFromInt(1)},
	}
	_, err := ledger.ResolveUnitCosts(lines, decimal.NewFromFloat(40.00))

	var pricingErr *ledger.PricingError
	require.ErrorAs(t, err, &pricingErr, "restante <= 0 debe producir PricingError")
	assert.True(t, pricingErr.FixedTotal.Equal(decimal.NewFromFloat(40.00)))
}

// Restante negativo (pagado menor que las fijas) también es PricingError.
func TestResolveUnitCosts_ErrorRestanteNegativo(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "P001", Quantity: decimal.NewFromInt(5), UnitCost: costPtr(10.00)},
		{ProductCod: "P002", Quantity: decimal.NewFromInt(2)},
	}
	_, err := ledger.ResolveUnitCosts(lines, decimal.NewFromFloat(30.00))

	var pricingErr *ledger.PricingError
	assert.ErrorAs(t, err, &pricingErr)
}

// El reparto conserva el total: Σ(subtotales) == monto pagado cuando todas
// las líneas son abiertas, dentro de la tolerancia del decimal.
func TestResolveUnitCosts_ConservaElTotal(t *testing.T) {
	lines := []ledger.LineInput{
		{ProductCod: "P001", Quantity: decimal.NewFromInt(3)},
		{ProductCod: "P002", Quantity: decimal.NewFromInt(7)},
	}
	paid := decimal.NewFromFloat(100.00)
	resolved, err := ledger.ResolveUnitCosts(lines, paid)
	require.NoError(t, err)

	diff := ledger.SubtotalOf(resolved).Sub(paid).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)),
		"la suma de subtotales debe igualar el pagado salvo redondeo, diff=%s", diff)
}
