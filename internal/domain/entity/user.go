package entity

// User usuario del dashboard (solo lectura desde esta capa).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash
}
