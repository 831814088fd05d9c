package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
)

// Errores de las consultas del dashboard. Cada operación devuelve siempre su
// mensaje fijo; la causa se registra en el log y no viaja en el error.
var (
	ErrFetchRevenue           = errors.New("Failed to fetch revenue data.")
	ErrFetchLatestInvoices    = errors.New("Failed to fetch the latest invoices.")
	ErrFetchCardData          = errors.New("Failed to fetch card data.")
	ErrFetchInvoices          = errors.New("Failed to fetch invoices.")
	ErrFetchInvoicesPages     = errors.New("Failed to fetch total number of invoices.")
	ErrFetchInvoice           = errors.New("Failed to fetch invoice.")
	ErrFetchCustomers         = errors.New("Failed to fetch all customers.")
	ErrFetchFilteredCustomers = errors.New("Failed to fetch customer table.")
)
