package dto

// PageResponse metadatos de página en listados.
type PageResponse struct {
	Count       int `json:"count"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// NewPage calcula el total de páginas.
func NewPage(total, page, limit int) PageResponse {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PageResponse{Count: total, TotalPages: pages, CurrentPage: page, Limit: limit}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InsufficientStockResponse error de stock con el detalle del faltante.
type InsufficientStockResponse struct {
	ErrorResponse
	ProductID  string `json:"productId"`
	LocationID string `json:"locationId"`
	Requested  string `json:"requested"`
	Available  string `json:"available"`
}
