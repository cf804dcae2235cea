package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/application/stock"
	"github.com/puntoventa/minimarket-api/internal/domain/ledger"
)

func validRequest() dto.CreateEntryRequest {
	cost := decimal.NewFromFloat(10.00)
	return dto.CreateEntryRequest{
		AmountPaid: decimal.NewFromFloat(50.00),
		Lines: []dto.CreateEntryLineRequest{
			{ProductCod: "P001", Quantity: decimal.NewFromInt(5), UnitCost: &cost},
		},
	}
}

func requireValidation(t *testing.T, err error, wantField string) {
	t.Helper()
	var vErr *ledger.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, wantField, vErr.Field)
}

func TestValidateEntry_RequestValido(t *testing.T) {
	assert.NoError(t, stock.ValidateEntry(validRequest()))
}

func TestValidateEntry_SinLineas(t *testing.T) {
	in := validRequest()
	in.Lines = nil
	requireValidation(t, stock.ValidateEntry(in), "productos")
}

func TestValidateEntry_TotalPagadoNoPositivo(t *testing.T) {
	in := validRequest()
	in.AmountPaid = decimal.Zero
	requireValidation(t, stock.ValidateEntry(in), "total_pagado")
}

func TestValidateEntry_CodigoVacio(t *testing.T) {
	in := validRequest()
	in.Lines[0].ProductCod = "   "
	requireValidation(t, stock.ValidateEntry(in), "productos[0].producto_cod")
}

func TestValidateEntry_CantidadNoPositiva(t *testing.T) {
	in := validRequest()
	in.Lines[0].Quantity = decimal.NewFromInt(-1)
	requireValidation(t, stock.ValidateEntry(in), "productos[0].cantidad")
}

func TestValidateEntry_PrecioExplicitoNoPositivo(t *testing.T) {
	in := validRequest()
	zero := decimal.Zero
	in.Lines[0].UnitCost = &zero
	requireValidation(t, stock.ValidateEntry(in), "productos[0].precio_compra")
}

// Precio ausente es válido (se deriva); solo el explícito debe ser > 0.
func TestValidateEntry_PrecioAusenteEsValido(t *testing.T) {
	in := validRequest()
	in.Lines[0].UnitCost = nil
	assert.NoError(t, stock.ValidateEntry(in))
}

// Un mismo producto dos veces en la entrada se rechaza, no se fusiona.
func TestValidateEntry_ProductoRepetido(t *testing.T) {
	in := validRequest()
	in.Lines = append(in.Lines, dto.CreateEntryLineRequest{
		ProductCod: "P001",
		Quantity:   decimal.NewFromInt(2),
	})
	requireValidation(t, stock.ValidateEntry(in), "productos[1].producto_cod")
}

// El duplicado se detecta aun con espacios alrededor del código.
func TestValidateEntry_ProductoRepetidoConEspacios(t *testing.T) {
	in := validRequest()
	in.Lines = append(in.Lines, dto.CreateEntryLineRequest{
		ProductCod: " P001 ",
		Quantity:   decimal.NewFromInt(2),
	})
	requireValidation(t, stock.ValidateEntry(in), "productos[1].producto_cod")
}
