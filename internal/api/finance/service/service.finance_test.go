package financesvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	financemodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/finance/models"
)

func TestSummarize(t *testing.T) {
	transactions := []financemodels.Transaction{
		{Value: 35, Type: financemodels.TypeAdesao},
		{Value: 50, Type: financemodels.TypeRenovacao},
		{Value: 19.9, Type: financemodels.TypeRenovacao},
	}

	summary := Summarize(transactions, 2026, time.August)
	assert.Equal(t, 2026, summary.Year)
	assert.Equal(t, 8, summary.Month)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 104.9, summary.Total, 0.001)
	assert.InDelta(t, 35, summary.Adesoes, 0.001)
	assert.InDelta(t, 69.9, summary.Renovacoes, 0.001)
}

func TestSummarize_Vazio(t *testing.T) {
	summary := Summarize(nil, 2026, time.January)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.Total)
}

func TestMonthRange(t *testing.T) {
	start, end := monthRange(2026, time.December)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local), end)
}
