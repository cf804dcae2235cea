package entity

// Customer representa un cliente o proveedor (tabla cliente).
// Las entradas de stock lo referencian opcionalmente como proveedor;
// nunca se crea implícitamente desde el ledger.
type Customer struct {
	ID      int64
	Doc     string // DNI o RUC
	Name    string // nom
	Address string // dir
	Phone   string
	Email   string
	Type    string // "PERSONA" | "EMPRESA"
}
