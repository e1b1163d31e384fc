// Package template - motor de mensagens parametrizadas enviadas via bot.
// Resolve o texto por chave (custom do dono → padrão embutido → fallback) e
// substitui os tokens {nome}, {vencimento}, {dias}, {empresa} e {valor}.
package template

import (
	"strconv"
	"strings"
	"time"

	"github.com/atendimentojatv-stack/firetvGESTOR/internal/locale"
)

// Key identifica um template de mensagem
type Key string

const (
	KeyExpired     Key = "expired"
	KeyToday       Key = "today"
	KeyExpiring    Key = "expiring"
	KeyActive      Key = "active"
	KeyRenewal     Key = "renewal"
	KeyTeamActive  Key = "team_active"
	KeyTeamRenewal Key = "team_renewal"
)

// Keys lista todas as chaves válidas na ordem de exibição
var Keys = []Key{KeyExpired, KeyToday, KeyExpiring, KeyActive, KeyRenewal, KeyTeamActive, KeyTeamRenewal}

// IsValidKey verifica se a string corresponde a uma chave conhecida
func IsValidKey(k string) bool {
	for _, key := range Keys {
		if string(key) == k {
			return true
		}
	}
	return false
}

// DefaultCompanyName é usado quando o dono não configurou o nome da empresa
const DefaultCompanyName = "Fire Gestor"

// greeting abre todas as mensagens padrão voltadas ao cliente
const greeting = "Olá *{nome}*, tudo bem? Aqui é do *{empresa}*.\n\n"

// defaults são os textos embutidos, um por chave
var defaults = map[Key]string{
	KeyExpired:     greeting + "Seu plano *venceu* há *{dias}* dia(s), em *{vencimento}*. Renove agora para não perder o acesso! 🚫\n\nValor da renovação: *{valor}*.",
	KeyToday:       greeting + "Seu plano *vence hoje* ({vencimento})! Renove ainda hoje e continue aproveitando sem interrupções. ⏰\n\nValor da renovação: *{valor}*.",
	KeyExpiring:    greeting + "Seu plano vence em *{dias}* dia(s), no dia *{vencimento}*. Garanta já a sua renovação! ⚠️\n\nValor da renovação: *{valor}*.",
	KeyActive:      greeting + "Seu plano está *ativo* e válido até *{vencimento}*. Obrigado pela preferência! ✅",
	KeyRenewal:     greeting + "Renovação confirmada! ✅ Seu novo vencimento é *{vencimento}*.\n\nValor pago: *{valor}*. Obrigado pela confiança!",
	KeyTeamActive:  "Olá *{nome}*! Seu painel na *{empresa}* está ativo até *{vencimento}*. Restam *{dias}* dia(s).",
	KeyTeamRenewal: "Olá *{nome}*! Seu acesso ao painel da *{empresa}* foi renovado até *{vencimento}*. Bom trabalho! 🚀",
}

// Source indica de onde veio o texto resolvido
type Source string

const (
	SourceCustom   Source = "custom"   // template configurado pelo dono da conta
	SourceDefault  Source = "default"  // texto padrão embutido da chave pedida
	SourceFallback Source = "fallback" // padrão de "active", último recurso
)

// Resolution é o resultado da resolução de um template
type Resolution struct {
	Key    Key    `json:"key"`
	Source Source `json:"source"`
	Text   string `json:"text"`
}

// Resolve aplica a ordem de resolução: custom do dono → padrão da chave →
// padrão de "active". Um custom vazio ou só com espaços conta como ausente.
func Resolve(custom map[string]string, key Key) Resolution {
	if custom != nil {
		if text, ok := custom[string(key)]; ok && strings.TrimSpace(text) != "" {
			return Resolution{Key: key, Source: SourceCustom, Text: text}
		}
	}
	if text, ok := defaults[key]; ok {
		return Resolution{Key: key, Source: SourceDefault, Text: text}
	}
	return Resolution{Key: key, Source: SourceFallback, Text: defaults[KeyActive]}
}

// Fields carrega os dados crus de um cliente ou membro para substituição
type Fields struct {
	Name          string     // {nome}
	DueDate       *time.Time // {vencimento}
	DaysRemaining int        // {dias} - sempre exibido em valor absoluto
	CompanyName   string     // {empresa}
	Value         float64    // {valor}
}

// Render substitui os tokens do texto pelos campos informados.
// Substituição literal: tokens desconhecidos permanecem no texto como estão.
func Render(text string, fields Fields, f *locale.Formatter) string {
	if f == nil {
		f = locale.BRL()
	}

	due := "Sem data"
	if fields.DueDate != nil {
		due = f.FormatDate(*fields.DueDate)
	}

	days := fields.DaysRemaining
	if days < 0 {
		days = -days
	}

	company := fields.CompanyName
	if strings.TrimSpace(company) == "" {
		company = DefaultCompanyName
	}

	replacer := strings.NewReplacer(
		"{nome}", fields.Name,
		"{vencimento}", due,
		"{dias}", strconv.Itoa(days),
		"{empresa}", company,
		"{valor}", f.FormatCurrency(fields.Value),
	)
	return replacer.Replace(text)
}
