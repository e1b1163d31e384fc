// Package locale concentra a formatação de datas e moeda usada nas mensagens.
// A convenção padrão é pt-BR/BRL, mas o Formatter é injetável para permitir
// outras convenções sem tocar no motor de templates.
package locale

import (
	"fmt"
	"strings"
	"time"
)

// Formatter define a convenção de formatação de data e moeda de um dono de conta
type Formatter struct {
	DateLayout     string // Layout Go para datas exibidas
	CurrencySymbol string // Símbolo monetário prefixado
	DecimalSep     string // Separador decimal
	ThousandSep    string // Separador de milhar
	ZeroCurrency   string // Texto exibido quando o valor é zero/ausente
}

// BRL retorna a convenção padrão do produto: data dd/mm/aaaa e moeda em reais
func BRL() *Formatter {
	return &Formatter{
		DateLayout:     "02/01/2006",
		CurrencySymbol: "R$",
		DecimalSep:     ",",
		ThousandSep:    ".",
		ZeroCurrency:   "R$ 0,00",
	}
}

// FormatDate formata a data no layout do formatter
func (f *Formatter) FormatDate(t time.Time) string {
	return t.Format(f.DateLayout)
}

// FormatCurrency formata um valor monetário com símbolo, milhar e decimal
func (f *Formatter) FormatCurrency(value float64) string {
	if value == 0 {
		return f.ZeroCurrency
	}

	negative := value < 0
	if negative {
		value = -value
	}

	// Duas casas decimais, arredondamento padrão do fmt
	s := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	// Agrupa o inteiro em blocos de 3
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	result := f.CurrencySymbol + " " + strings.Join(grouped, f.ThousandSep) + f.DecimalSep + decPart
	if negative {
		result = "-" + result
	}
	return result
}
