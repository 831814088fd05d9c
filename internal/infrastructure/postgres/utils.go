package postgres

import (
	"errors"
	"strings"
)

var errTLSRequired = errors.New("se requiere conexión cifrada (sslmode=require o superior)")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern construye el patrón para ILIKE '%query%'. Los comodines del texto
// del usuario se escapan para que la búsqueda sea un "contiene" literal, igual que
// el backend en memoria.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
