package dto

// CustomerRequest body de creación/edición de clientes.
type CustomerRequest struct {
	Doc     string `json:"doc"`
	Name    string `json:"nom"`
	Address string `json:"dir,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Email   string `json:"email,omitempty"`
	Type    string `json:"tipo"` // "PERSONA" | "EMPRESA"
}

// CustomerResponse cliente/proveedor.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Doc     string `json:"doc"`
	Name    string `json:"nom"`
	Address string `json:"dir,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Email   string `json:"email,omitempty"`
	Type    string `json:"tipo"`
}

// ListCustomersQuery query params de GET /api/customers.
type ListCustomersQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Type   string `query:"tipo"`
}

// ListCustomersResponse respuesta de GET /api/customers.
type ListCustomersResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination Pagination         `json:"pagination"`
}
