package clientsvc

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/locale"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{"dd/mm/aaaa", "05/08/2026", ptr(date(2026, 8, 5))},
		{"aaaa-mm-dd", "2026-08-05", ptr(date(2026, 8, 5))},
		{"dd-mm-aaaa", "05-08-2026", ptr(date(2026, 8, 5))},
		{"dd.mm.aaaa", "05.08.2026", ptr(date(2026, 8, 5))},
		{"ano com dois dígitos", "05/08/26", ptr(date(2026, 8, 5))},
		{"com horário anexado", "2026-08-05 14:30", ptr(date(2026, 8, 5))},
		{"serial de planilha", "46239", ptr(date(2026, 8, 5))},
		{"serial abaixo do corte", "25000", nil},
		{"vazio", "", nil},
		{"texto solto", "sem data", nil},
		{"dia impossível", "31/02/2026", nil},
		{"mês impossível", "05/13/2026", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlexibleDate(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"R$ 35,00", 35},
		{"35,00", 35},
		{"35.00", 35},
		{"R$ 1.250,50", 1250.5},
		{"r$19,90", 19.9},
		{"", 0},
		{"abc", 0},
		{"-10", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCurrency(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"(11) 98765-4321", "5511987654321"},
		{"11987654321", "5511987654321"},
		{"5511987654321", "5511987654321"},
		{"+55 11 98765-4321", "5511987654321"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParseImportCSV_CabecalhoPadrao(t *testing.T) {
	csvData := "Nome;WhatsApp;Vencimento;Valor;Usuario;Observacao;Status\n" +
		"João Silva;(11) 98765-4321;05/08/2026;R$ 35,00;joao123;plano família;active\n" +
		"Maria;11912345678;2026-09-01;19,90;;;\n"

	clients, err := ParseImportCSV([]byte(csvData))
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, "João Silva", clients[0].Name)
	assert.Equal(t, "5511987654321", clients[0].Whatsapp)
	require.NotNil(t, clients[0].DueDate)
	assert.Equal(t, date(2026, 8, 5), *clients[0].DueDate)
	assert.Equal(t, 35.0, clients[0].Value)
	assert.Equal(t, "joao123", clients[0].Username)
	assert.Equal(t, "plano família", clients[0].Observation)
	assert.Equal(t, clientmodels.StatusActive, clients[0].Status)

	assert.Equal(t, "Maria", clients[1].Name)
	assert.Equal(t, 19.9, clients[1].Value)
	assert.Equal(t, clientmodels.StatusActive, clients[1].Status)
}

func TestParseImportCSV_CabecalhoVariado(t *testing.T) {
	// Cabeçalhos fora do padrão são mapeados por fragmento
	csvData := "Cliente,Telefone,Data de Expiração,Preço,Login,Notas\n" +
		"Ana,21999887766,46239,\"R$ 50,00\",ana01,vip\n"

	clients, err := ParseImportCSV([]byte(csvData))
	require.NoError(t, err)
	require.Len(t, clients, 1)

	assert.Equal(t, "Ana", clients[0].Name)
	assert.Equal(t, "5521999887766", clients[0].Whatsapp)
	require.NotNil(t, clients[0].DueDate)
	assert.Equal(t, date(2026, 8, 5), *clients[0].DueDate)
	assert.Equal(t, 50.0, clients[0].Value)
	assert.Equal(t, "ana01", clients[0].Username)
	assert.Equal(t, "vip", clients[0].Observation)
}

func TestParseImportCSV_LinhasInvalidas(t *testing.T) {
	csvData := "Nome;Vencimento\n" +
		";05/08/2026\n" + // sem nome: ignorada
		"Carlos;data ruim\n" // data ilegível: cliente sem vencimento

	clients, err := ParseImportCSV([]byte(csvData))
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Carlos", clients[0].Name)
	assert.Nil(t, clients[0].DueDate)
}

func TestParseImportCSV_SemColunaDeNome(t *testing.T) {
	_, err := ParseImportCSV([]byte("Telefone;Valor\n11999999999;10\n"))
	assert.Error(t, err)
}

func TestParseImportCSV_BOM(t *testing.T) {
	csvData := "\xEF\xBB\xBFNome;Valor\nAna;10\n"
	clients, err := ParseImportCSV([]byte(csvData))
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana", clients[0].Name)
}

func TestExportCSV(t *testing.T) {
	due := date(2026, 8, 5)
	clients := []clientmodels.Client{
		{Name: "João", Whatsapp: "5511987654321", DueDate: &due, Value: 35, Username: "joao", Observation: "obs", Status: clientmodels.StatusActive},
		{Name: "Sem Data", Value: 19.9, Status: clientmodels.StatusActive},
	}

	out, err := ExportCSV(clients, locale.BRL())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Nome;WhatsApp;Vencimento;Valor;Usuario;Observacao;Status", lines[0])
	assert.Equal(t, "João;5511987654321;05/08/2026;35,00;joao;obs;active", lines[1])
	assert.Equal(t, "Sem Data;;;19,90;;;active", lines[2])
}

func TestExportCSV_RoundTrip(t *testing.T) {
	due := date(2026, 8, 5)
	original := []clientmodels.Client{
		{Name: "João", Whatsapp: "5511987654321", DueDate: &due, Value: 1250.5, Status: clientmodels.StatusActive},
	}

	out, err := ExportCSV(original, nil)
	require.NoError(t, err)

	parsed, err := ParseImportCSV([]byte(out))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, original[0].Name, parsed[0].Name)
	assert.Equal(t, original[0].Whatsapp, parsed[0].Whatsapp)
	assert.Equal(t, *original[0].DueDate, *parsed[0].DueDate)
	assert.Equal(t, original[0].Value, parsed[0].Value)
}
