package entity

// Family nivel superior de la taxonomía de productos (tabla familia).
type Family struct {
	ID   int64
	Name string
}

// Subfamily nivel inferior; todo producto cuelga de una subfamilia.
type Subfamily struct {
	ID       int64
	FamilyID int64
	Name     string

	FamilyName   string // resuelto por JOIN
	ProductCount int    // productos activos asociados
}
