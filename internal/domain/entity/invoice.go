package entity

import "time"

// DateLayout formato de fecha de factura (columna DATE, sin hora).
const DateLayout = "2006-01-02"

// Invoice representa una factura. Amount está en centavos.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Date       time.Time
	Status     string // crudo, tal como viene del almacenamiento; ver NormalizeStatus
}

// DateString devuelve la fecha en formato YYYY-MM-DD (igual que date::text en PostgreSQL).
func (i Invoice) DateString() string {
	return i.Date.Format(DateLayout)
}

// InvoiceWithCustomer factura con los campos del cliente ya resueltos (join).
type InvoiceWithCustomer struct {
	Invoice
	Name     string
	Email    string
	ImageURL string
}
