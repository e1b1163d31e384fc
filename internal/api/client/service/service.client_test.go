package clientsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	clientmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/lifecycle"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.Local)
	mk := func(offsetDays int, value float64) clientmodels.Client {
		d := now.AddDate(0, 0, offsetDays)
		return clientmodels.Client{DueDate: &d, Value: value}
	}

	clients := []clientmodels.Client{
		mk(10, 30),  // active
		mk(0, 25),   // today
		mk(2, 35),   // expiring
		mk(-5, 40),  // expired: fora do conjunto ativo
		{Value: 50}, // sem data: fora do conjunto ativo
	}

	stats := ComputeStats(clients, now)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 1, stats.Expiring)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 1, stats.NoDate)

	// Conjunto ativo {active, today, expiring}: contagem e soma de valores
	assert.Equal(t, 3, stats.ActiveCount)
	assert.Equal(t, 90.0, stats.ActiveValue)
}

func TestClassified(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.Local)
	due := now.AddDate(0, 0, -3)

	views := Classified([]clientmodels.Client{{Name: "x", DueDate: &due}}, now)
	assert.Len(t, views, 1)
	assert.Equal(t, lifecycle.StatusExpired, views[0].Classification.Status)
	assert.Equal(t, -3, views[0].Classification.DaysRemaining)
}
