package template

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atendimentojatv-stack/firetvGESTOR/internal/locale"
)

func TestResolve_OrdemDeResolucao(t *testing.T) {
	custom := map[string]string{
		"expired":  "Texto do dono: {nome} venceu.",
		"expiring": "   ", // só espaços conta como ausente
	}

	tests := []struct {
		name       string
		custom     map[string]string
		key        Key
		wantSource Source
	}{
		{"custom configurado vence o padrão", custom, KeyExpired, SourceCustom},
		{"custom em branco cai no padrão", custom, KeyExpiring, SourceDefault},
		{"chave sem custom usa o padrão", custom, KeyToday, SourceDefault},
		{"mapa nulo usa o padrão", nil, KeyRenewal, SourceDefault},
		{"chave desconhecida cai no fallback", nil, Key("unknown"), SourceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.custom, tt.key)
			assert.Equal(t, tt.wantSource, res.Source)
			assert.Equal(t, tt.key, res.Key)
			assert.NotEmpty(t, res.Text)
		})
	}
}

func TestResolve_FallbackUsaTextoDeActive(t *testing.T) {
	res := Resolve(nil, Key("inexistente"))
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, defaults[KeyActive], res.Text)
}

func TestRender_SubstituiTokens(t *testing.T) {
	due := time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local)
	out := Render("Olá {nome}, vence em {vencimento} ({dias} dias) - {empresa} - {valor}", Fields{
		Name:          "João",
		DueDate:       &due,
		DaysRemaining: 3,
		CompanyName:   "JATV Play",
		Value:         35,
	}, locale.BRL())

	assert.Equal(t, "Olá João, vence em 05/08/2026 (3 dias) - JATV Play - R$ 35,00", out)
}

func TestRender_DiasSempreAbsoluto(t *testing.T) {
	// Cliente vencido: daysRemaining negativo aparece como contagem positiva
	due := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	res := Resolve(nil, KeyExpired)
	assert.Equal(t, SourceDefault, res.Source)

	out := Render(res.Text, Fields{
		Name:          "Maria",
		DueDate:       &due,
		DaysRemaining: -5,
		Value:         19.9,
	}, nil)

	assert.Contains(t, out, "há *5* dia(s)")
	assert.NotContains(t, out, "-5")
	assert.Contains(t, out, "01/08/2026")
	assert.Contains(t, out, "R$ 19,90")
}

func TestRender_EmpresaComFallback(t *testing.T) {
	out := Render("Aqui é do {empresa}.", Fields{Name: "x"}, nil)
	assert.Equal(t, "Aqui é do "+DefaultCompanyName+".", out)

	out = Render("Aqui é do {empresa}.", Fields{CompanyName: "Minha TV"}, nil)
	assert.Equal(t, "Aqui é do Minha TV.", out)
}

func TestRender_TokenDesconhecidoFicaLiteral(t *testing.T) {
	out := Render("Oi {nome}, código {codigo}.", Fields{Name: "Ana"}, nil)
	assert.Equal(t, "Oi Ana, código {codigo}.", out)
}

func TestRender_SemDataDeVencimento(t *testing.T) {
	out := Render("Vencimento: {vencimento}", Fields{}, nil)
	assert.Equal(t, "Vencimento: Sem data", out)
}

func TestRender_TokenRepetido(t *testing.T) {
	out := Render("{nome} e {nome}", Fields{Name: "Ana"}, nil)
	assert.Equal(t, "Ana e Ana", out)
}

func TestDefaults_CobremTodasAsChaves(t *testing.T) {
	for _, key := range Keys {
		assert.Contains(t, defaults, key, "chave sem texto padrão: %s", key)
		assert.True(t, IsValidKey(string(key)))
	}
	assert.False(t, IsValidKey("qualquer"))
}

func TestDefaults_MensagensDeClienteTemSaudacao(t *testing.T) {
	for _, key := range []Key{KeyExpired, KeyToday, KeyExpiring, KeyActive, KeyRenewal} {
		assert.True(t, strings.HasPrefix(defaults[key], "Olá *{nome}*"), "saudação ausente em %s", key)
	}
}
