package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (tabla producto).
// Stock es el saldo actual en unidades; solo lo mutan las entradas de stock
// vía el incremento atómico del repositorio, nunca una edición directa.
type Product struct {
	Cod           string // código estable, clave humana del producto
	SubfamilyID   int64  // sub_id -> subfamilia
	Description   string
	PurchasePrice decimal.Decimal // p_compra: último costo de compra conocido
	SalePrice     decimal.Decimal // p_venta
	Unit          string          // unidad (UND, KG, LT, ...)
	Stock         decimal.Decimal // saldo actual; fraccional para unidades por peso
	Active        bool
}

// ProductListItem producto con los nombres de su taxonomía (para listados).
type ProductListItem struct {
	Product
	SubfamilyName string
	FamilyName    string
}
