package entity

// Status estado normalizado de una factura.
type Status string

// Estados conocidos de factura.
const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// ToStatus mapea exactamente "pending" y "paid" a su estado. Cualquier otro
// valor (incluidas variantes de mayúsculas o con espacios) devuelve ok=false.
func ToStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusPaid:
		return Status(raw), true
	default:
		return "", false
	}
}

// NormalizeStatus aplica ToStatus con fallback a StatusPending.
func NormalizeStatus(raw string) Status {
	if s, ok := ToStatus(raw); ok {
		return s
	}
	return StatusPending
}
