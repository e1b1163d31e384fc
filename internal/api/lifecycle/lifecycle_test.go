package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// now fixo para manter os testes determinísticos
var now = time.Date(2026, 8, 15, 14, 30, 0, 0, time.Local)

func daysFromNow(k int) *time.Time {
	d := now.AddDate(0, 0, k)
	return &d
}

func TestClassify_SemData(t *testing.T) {
	c := Classify(nil, now)
	assert.Equal(t, StatusNoDate, c.Status)
	assert.Equal(t, LabelNoDate, c.Label)
	assert.Equal(t, 0, c.DaysRemaining)
}

func TestClassifyUnparsed(t *testing.T) {
	c := ClassifyUnparsed()
	assert.Equal(t, StatusNoDate, c.Status)
	assert.Equal(t, LabelInvalidDate, c.Label)
}

func TestClassify_Vencido(t *testing.T) {
	// k dias no passado => expired com daysRemaining = -k
	for _, k := range []int{1, 2, 5, 30, 365} {
		c := Classify(daysFromNow(-k), now)
		assert.Equal(t, StatusExpired, c.Status, "k=%d", k)
		assert.Equal(t, -k, c.DaysRemaining, "k=%d", k)
	}
}

func TestClassify_VenceHoje(t *testing.T) {
	// Qualquer horário do mesmo dia conta como "hoje"
	early := time.Date(now.Year(), now.Month(), now.Day(), 0, 1, 0, 0, time.Local)
	late := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, time.Local)

	for _, due := range []*time.Time{&early, &late, daysFromNow(0)} {
		c := Classify(due, now)
		assert.Equal(t, StatusToday, c.Status)
		assert.Equal(t, 0, c.DaysRemaining)
	}
}

func TestClassify_Vencendo(t *testing.T) {
	for k := 1; k <= ExpiringThresholdDays; k++ {
		c := Classify(daysFromNow(k), now)
		assert.Equal(t, StatusExpiring, c.Status, "k=%d", k)
		assert.Equal(t, k, c.DaysRemaining, "k=%d", k)
	}
}

func TestClassify_Ativo(t *testing.T) {
	for _, k := range []int{4, 10, 30, 365} {
		c := Classify(daysFromNow(k), now)
		assert.Equal(t, StatusActive, c.Status, "k=%d", k)
		assert.Equal(t, k, c.DaysRemaining, "k=%d", k)
	}
}

func TestClassify_ParticaoSemLacunas(t *testing.T) {
	// Todo offset inteiro cai em exatamente um bucket; o conjunto ativo
	// cobre tudo que não é expired nem no_date.
	for k := -400; k <= 400; k++ {
		c := Classify(daysFromNow(k), now)
		if k < 0 {
			assert.Equal(t, StatusExpired, c.Status, "k=%d", k)
			assert.False(t, IsActiveStatus(c.Status), "k=%d", k)
		} else {
			assert.True(t, IsActiveStatus(c.Status), "k=%d", k)
			assert.NotEqual(t, StatusExpired, c.Status, "k=%d", k)
		}
	}
}

func TestIsActiveStatus(t *testing.T) {
	for _, s := range ActiveStatuses {
		assert.True(t, IsActiveStatus(s))
	}
	assert.False(t, IsActiveStatus(StatusExpired))
	assert.False(t, IsActiveStatus(StatusNoDate))
}

func TestRenewDate_BaseNoPassadoResetaParaHoje(t *testing.T) {
	// Vencimento 10 dias atrás: renovar por 30 dá hoje+30, não due+30
	got := RenewDate(daysFromNow(-10), 30, now)
	want := Midnight(now).AddDate(0, 0, 30)
	assert.Equal(t, want, got)
}

func TestRenewDate_BaseNoFuturoAcumula(t *testing.T) {
	// Vencimento 10 dias à frente: renovar por 30 dá due+30
	got := RenewDate(daysFromNow(10), 30, now)
	want := Midnight(*daysFromNow(10)).AddDate(0, 0, 30)
	assert.Equal(t, want, got)
}

func TestRenewDate_SemDataUsaHoje(t *testing.T) {
	got := RenewDate(nil, 30, now)
	assert.Equal(t, Midnight(now).AddDate(0, 0, 30), got)
}

func TestRenewDate_VenceHoje(t *testing.T) {
	// Vencimento hoje: base hoje em ambos os ramos, resultado hoje+30
	got := RenewDate(daysFromNow(0), 30, now)
	assert.Equal(t, Midnight(now).AddDate(0, 0, 30), got)
}

func TestRenewDate_SaidaSemHorario(t *testing.T) {
	got := RenewDate(daysFromNow(10), 30, now)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
}

func TestRenew_PrecisaoCompleta(t *testing.T) {
	// Expiração de membro preserva data/hora completa
	current := now.Add(48 * time.Hour)
	got := Renew(&current, 30, now)
	assert.Equal(t, current.AddDate(0, 0, 30), got)
}

func TestRenew_ExpiradoResetaParaAgora(t *testing.T) {
	current := now.Add(-time.Hour)
	got := Renew(&current, 7, now)
	assert.Equal(t, now.AddDate(0, 0, 7), got)
}

func TestRenew_SemDataUsaAgora(t *testing.T) {
	assert.Equal(t, now.AddDate(0, 0, TrialDays), Renew(nil, TrialDays, now))
	assert.Equal(t, now.AddDate(0, 0, BootstrapDays), Renew(nil, BootstrapDays, now))
}
