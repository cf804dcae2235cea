package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body de POST /api/inventory/products.
type CreateProductRequest struct {
	Cod           string          `json:"cod"`
	SubfamilyID   int64           `json:"sub_id"`
	Description   string          `json:"descripcion"`
	PurchasePrice decimal.Decimal `json:"p_compra"`
	SalePrice     decimal.Decimal `json:"p_venta"`
	Unit          string          `json:"unidad"`
}

// UpdateProductRequest body de PUT /api/inventory/products/:cod.
// El stock no se edita por esta vía; solo lo mueven las entradas.
type UpdateProductRequest struct {
	SubfamilyID   int64           `json:"sub_id"`
	Description   string          `json:"descripcion"`
	PurchasePrice decimal.Decimal `json:"p_compra"`
	SalePrice     decimal.Decimal `json:"p_venta"`
	Unit          string          `json:"unidad"`
	Active        *bool           `json:"activo,omitempty"`
}

// ProductResponse producto con su taxonomía resuelta.
type ProductResponse struct {
	Cod           string          `json:"cod"`
	SubfamilyID   int64           `json:"sub_id"`
	SubfamilyName string          `json:"subfamilia_nom,omitempty"`
	FamilyName    string          `json:"familia_nom,omitempty"`
	Description   string          `json:"descripcion"`
	PurchasePrice decimal.Decimal `json:"p_compra"`
	SalePrice     decimal.Decimal `json:"p_venta"`
	Unit          string          `json:"unidad"`
	Stock         decimal.Decimal `json:"stock"`
	Active        bool            `json:"activo"`
}

// ListProductsQuery query params de GET /api/inventory/products.
type ListProductsQuery struct {
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
	Search      string `query:"search"`
	SubfamilyID int64  `query:"sub_id"`
	Active      string `query:"activo"` // "true" | "false" | ""
	SortBy      string `query:"sort_by"`
	SortDir     string `query:"sort_dir"` // "asc" | "desc"
}

// ListProductsResponse respuesta de GET /api/inventory/products.
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}
