package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_BRL(t *testing.T) {
	f := BRL()
	d := time.Date(2026, 8, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "05/08/2026", f.FormatDate(d))
}

func TestFormatCurrency_BRL(t *testing.T) {
	f := BRL()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero usa o texto padrão", 0, "R$ 0,00"},
		{"valor simples", 35, "R$ 35,00"},
		{"centavos", 19.9, "R$ 19,90"},
		{"milhar agrupado", 1250.5, "R$ 1.250,50"},
		{"milhões", 1234567.89, "R$ 1.234.567,89"},
		{"negativo", -35, "-R$ 35,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatCurrency(tt.value))
		})
	}
}
