package dto

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination calcula los metadatos a partir del total de filas.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ErrorResponse cuerpo de error HTTP. MissingProducts se llena solo en
// errores de referencia, para que el cliente corrija el request completo
// de una vez.
type ErrorResponse struct {
	Code            string   `json:"code"`
	Message         string   `json:"message"`
	Field           string   `json:"field,omitempty"`
	MissingProducts []string `json:"missingProducts,omitempty"`
}
