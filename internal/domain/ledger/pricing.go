package ledger

import "github.com/shopspring/decimal"

// LineInput línea candidata de una entrada: cantidad y costo unitario
// opcional. Si UnitCost es nil el costo se deriva del monto agregado.
type LineInput struct {
	ProductCod string
	Quantity   decimal.Decimal
	UnitCost   *decimal.Decimal
}

// ResolvedLine línea con el costo unitario ya resuelto.
type ResolvedLine struct {
	ProductCod string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	Derived    bool // true si el costo salió del reparto del monto pagado
}

// Subtotal cantidad por costo unitario.
func (l ResolvedLine) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost)
}

// ResolveUnitCosts deriva el costo unitario de las líneas sin precio a partir
// del monto total pagado (servicio de dominio, puro):
//
//	remaining       = amountPaid - Σ(cant*costo) de líneas con precio fijo
//	derivedUnitCost = remaining / Σ(cant) de líneas abiertas
//
// Todas las líneas abiertas reciben el MISMO costo unitario derivado; se
// acepta perder precisión por SKU a cambio de no bloquear la entrada cuando
// el proveedor no entrega precios por ítem. Retorna PricingError si no queda
// valor estrictamente positivo a distribuir.
func ResolveUnitCosts(lines []LineInput, amountPaid decimal.Decimal) ([]ResolvedLine, error) {
	resolved := make([]ResolvedLine, len(lines))

	fixedTotal := decimal.Zero
	openQty := decimal.Zero
	openCount := 0
	for i, ln := range lines {
		resolved[i] = ResolvedLine{ProductCod: ln.ProductCod, Quantity: ln.Quantity}
		if ln.UnitCost != nil {
			resolved[i].UnitCost = *ln.UnitCost
			fixedTotal = fixedTotal.Add(ln.Quantity.Mul(*ln.UnitCost))
			continue
		}
		openQty = openQty.Add(ln.Quantity)
		openCount++
	}

	if openCount == 0 {
		return resolved, nil
	}

	remaining := amountPaid.Sub(fixedTotal)
	if !remaining.GreaterThan(decimal.Zero) {
		return nil, &PricingError{AmountPaid: amountPaid, FixedTotal: fixedTotal}
	}
	// Estructuralmente imposible tras la validación (cantidades > 0); se
	// verifica igual para no dividir entre cero.
	if !openQty.GreaterThan(decimal.Zero) {
		return nil, &PricingError{
			AmountPaid: amountPaid,
			FixedTotal: fixedTotal,
			Message:    "las líneas sin precio no suman cantidad positiva",
		}
	}

	derivedUnitCost := remaining.Div(openQty)
	for i := range resolved {
		if lines[i].UnitCost == nil {
			resolved[i].UnitCost = derivedUnitCost
			resolved[i].Derived = true
		}
	}
	return resolved, nil
}

// SubtotalOf suma los subtotales de un conjunto de líneas resueltas.
func SubtotalOf(lines []ResolvedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
