package ledger

import "github.com/shopspring/decimal"

// taxTolerance absorbe el residuo de redondeo de los costos derivados: la
// división de ResolveUnitCosts corta en decimal.DivisionPrecision, así que
// cantidad×costo puede quedar 1e-16 por encima o por debajo del monto
// pagado. Menos de un centavo de diferencia no es IGV ni es error.
var taxTolerance = decimal.New(1, -2) // 0.01

// AllocateTax calcula el IGV de una entrada como residuo: no consulta tabla
// de tasas, el impuesto es simplemente pagado - subtotal cuando la entrada
// se marca con IGV incluido. Es una simplificación deliberada del modelo
// tributario, no una calculadora de IVA.
//
// Sin IGV incluido el impuesto es 0 y se admite que el monto pagado exceda
// el subtotal (redondeo o propina, no es error). Con IGV incluido, pagar
// menos que el subtotal más allá de taxTolerance es TaxError; un residuo
// menor a la tolerancia en cualquier sentido se colapsa a 0 para que el
// ruido de redondeo nunca produzca un IGV negativo ni un IGV fantasma.
func AllocateTax(subtotal, amountPaid decimal.Decimal, taxInclusive bool) (decimal.Decimal, error) {
	if !taxInclusive {
		return decimal.Zero, nil
	}
	if subtotal.Sub(amountPaid).GreaterThan(taxTolerance) {
		return decimal.Zero, &TaxError{AmountPaid: amountPaid, Subtotal: subtotal}
	}
	tax := amountPaid.Sub(subtotal)
	if tax.Abs().LessThan(taxTolerance) {
		return decimal.Zero, nil
	}
	return tax, nil
}
