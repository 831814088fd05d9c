package dto

// ItemsPerPage tamaño fijo de página de la tabla de facturas.
const ItemsPerPage = 6

// Page normaliza un número de página 1-based (valores < 1 se tratan como 1) y
// devuelve el offset correspondiente: (page-1) * ItemsPerPage.
func Page(page int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	return ItemsPerPage, (page - 1) * ItemsPerPage
}

// TotalPages redondea hacia arriba total / ItemsPerPage. Cero si no hay filas.
func TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + ItemsPerPage - 1) / ItemsPerPage
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
