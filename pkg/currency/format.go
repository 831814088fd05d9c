// Package currency formatea montos en unidades menores (centavos) como texto
// monetario en locale en-US ($1,234.56).
package currency

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	symbol        = "$"
	minorPerMajor = 100
)

var locale = language.AmericanEnglish

// Format convierte centavos a la representación de display: divide entre 100,
// dos decimales, símbolo y separador de miles del locale. Negativos llevan el
// signo antes del símbolo: Format(-150) == "-$1.50".
//
// Trabaja en enteros; es total sobre int64 (incluido math.MinInt64).
func Format(amount int64) string {
	neg := amount < 0
	u := uint64(amount)
	if neg {
		u = ^u + 1
	}

	// message.Printer aplica la agrupación del locale (1,234,567)
	p := message.NewPrinter(locale)
	major := p.Sprintf("%d", u/minorPerMajor)

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, major, u%minorPerMajor)
}
