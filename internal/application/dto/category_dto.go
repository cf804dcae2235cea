package dto

// CategoryNameRequest body de creación/edición de familia o subfamilia.
type CategoryNameRequest struct {
	Name     string `json:"nom"`
	FamilyID int64  `json:"fam_id,omitempty"` // solo subfamilias
}

// FamilyResponse familia de productos.
type FamilyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nom"`
}

// SubfamilyResponse subfamilia con su familia y conteo de productos.
type SubfamilyResponse struct {
	ID           int64  `json:"id"`
	FamilyID     int64  `json:"fam_id"`
	FamilyName   string `json:"familia_nom"`
	Name         string `json:"nom"`
	ProductCount int    `json:"product_count"`
}

// CategoriesResponse árbol completo de la taxonomía.
type CategoriesResponse struct {
	Families    []FamilyResponse    `json:"familias"`
	Subfamilies []SubfamilyResponse `json:"subfamilias"`
}
