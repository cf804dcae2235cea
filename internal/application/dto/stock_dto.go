package dto

import "github.com/shopspring/decimal"

// CreateEntryLineRequest línea del body de POST /api/inventory/stock.
// precio_compra ausente = costo a derivar del total pagado.
type CreateEntryLineRequest struct {
	ProductCod string           `json:"producto_cod"`
	Quantity   decimal.Decimal  `json:"cantidad"`
	UnitCost   *decimal.Decimal `json:"precio_compra,omitempty"`
}

// CreateEntryRequest body de POST /api/inventory/stock.
type CreateEntryRequest struct {
	SupplierID   *int64                   `json:"cliente_id,omitempty"`
	Note         string                   `json:"observaciones,omitempty"`
	AmountPaid   decimal.Decimal          `json:"total_pagado"`
	TaxInclusive bool                     `json:"incluye_igv"`
	Lines        []CreateEntryLineRequest `json:"productos"`
}

// EntryLineResponse línea resuelta en la respuesta de creación/lectura.
type EntryLineResponse struct {
	ID            int64           `json:"id"`
	ProductCod    string          `json:"producto_cod"`
	Description   string          `json:"descripcion"`
	Quantity      decimal.Decimal `json:"cantidad"`
	UnitCost      decimal.Decimal `json:"precio_compra"`
	Derived       bool            `json:"precio_derivado"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Unit          string          `json:"unidad,omitempty"`
	PreviousStock decimal.Decimal `json:"stock_anterior"`
	NewStock      decimal.Decimal `json:"stock_nuevo"`
}

// EntryResponse entrada completamente materializada. Se devuelve desde la
// misma llamada de escritura: el cliente nunca necesita releer para conocer
// correlativo, fecha ni saldos resultantes.
type EntryResponse struct {
	ID            int64               `json:"id"`
	Num           int64               `json:"numero"`
	Date          string              `json:"fecha_entrada"`
	SupplierID    *int64              `json:"cliente_id"`
	SupplierDoc   string              `json:"cliente_doc,omitempty"`
	SupplierName  string              `json:"cliente_nom,omitempty"`
	Note          string              `json:"observaciones,omitempty"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"igv"`
	AmountPaid    decimal.Decimal     `json:"total_pagado"`
	TaxInclusive  bool                `json:"incluye_igv"`
	Lines         []EntryLineResponse `json:"productos"`
	LineCount     int                 `json:"total_productos"`
	QuantityTotal decimal.Decimal     `json:"total_cantidad"`
}

// ListEntriesQuery query params de GET /api/inventory/stock.
type ListEntriesQuery struct {
	Page         int    `query:"page"`
	Limit        int    `query:"limit"`
	Search       string `query:"search"`
	SupplierID   int64  `query:"cliente_id"`
	DateFrom     string `query:"fecha_desde"` // YYYY-MM-DD
	DateTo       string `query:"fecha_hasta"` // YYYY-MM-DD, inclusivo
	TaxInclusive string `query:"incluye_igv"` // "true" | "false" | ""
}

// EntryListItem cabecera con agregados para el listado.
type EntryListItem struct {
	ID            int64           `json:"id"`
	Num           int64           `json:"numero"`
	Date          string          `json:"fecha_entrada"`
	SupplierID    *int64          `json:"cliente_id"`
	SupplierDoc   string          `json:"cliente_doc,omitempty"`
	SupplierName  string          `json:"cliente_nom,omitempty"`
	SupplierType  string          `json:"cliente_tipo,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"igv"`
	AmountPaid    decimal.Decimal `json:"total_pagado"`
	TaxInclusive  bool            `json:"incluye_igv"`
	LineCount     int             `json:"total_productos"`
	QuantityTotal decimal.Decimal `json:"total_cantidad"`
}

// ListEntriesResponse respuesta de GET /api/inventory/stock.
type ListEntriesResponse struct {
	Entries    []EntryListItem `json:"entries"`
	Pagination Pagination      `json:"pagination"`
}

// EntryStatsResponse agregados de GET /api/inventory/stock/stats/summary.
type EntryStatsResponse struct {
	Period string `json:"periodo"`
	Stats  struct {
		EntryCount        int             `json:"total_entradas"`
		AmountPaidTotal   decimal.Decimal `json:"monto_total"`
		AmountPaidAverage decimal.Decimal `json:"promedio_entrada"`
		TaxInclusiveCount int             `json:"entradas_con_igv"`
		DistinctSuppliers int             `json:"proveedores_distintos"`
		LineTotal         int             `json:"productos_totales"`
		QuantityTotal     decimal.Decimal `json:"cantidad_total"`
	} `json:"estadisticas"`
}
