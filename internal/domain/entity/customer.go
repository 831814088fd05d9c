package entity

// Customer representa un cliente del dashboard (dato de referencia, inmutable).
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string // ruta relativa de la imagen, ej. /customers/amy-burns.png
}
