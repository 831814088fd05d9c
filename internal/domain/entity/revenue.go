package entity

// Revenue ingreso precalculado de un mes (serie temporal, no derivada de facturas).
type Revenue struct {
	Month   string
	Revenue int64
}
