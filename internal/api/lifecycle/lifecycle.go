// Package lifecycle - classificação de vencimento e cálculo de renovação.
// Funções puras, sem efeito colateral: recebem o "agora" como parâmetro para
// manter o resultado determinístico e testável.
package lifecycle

import (
	"math"
	"time"
)

// Status é o estado de ciclo de vida derivado da data de vencimento
type Status string

const (
	StatusActive   Status = "active"
	StatusToday    Status = "today"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
	StatusNoDate   Status = "no_date"
)

// ExpiringThresholdDays define a janela de aviso antes do vencimento
const ExpiringThresholdDays = 3

// Extensões fixas usadas no provisionamento e na renovação
const (
	DefaultExtensionDays = 30   // renovação padrão de cliente e de membro
	TrialDays            = 7    // revendedor auto-provisionado no primeiro login
	InviteTrialDays      = 30   // membro criado por convite de master/CEO
	BootstrapDays        = 3650 // conta CEO de bootstrap
)

// Labels de exibição por status. "Sem Data" e "Data Inválida" compartilham o
// status no_date e diferem apenas no rótulo, para diagnóstico.
const (
	LabelActive      = "Ativo"
	LabelToday       = "Vence Hoje"
	LabelExpiring    = "Vencendo"
	LabelExpired     = "Vencido"
	LabelNoDate      = "Sem Data"
	LabelInvalidDate = "Data Inválida"
)

// Classification é o resultado da classificação de uma data de vencimento
type Classification struct {
	Status        Status `json:"status"`
	Label         string `json:"label"`
	DaysRemaining int    `json:"daysRemaining"`
}

// ActiveStatuses é o conjunto de status considerados "ativos" em filtros,
// dashboard e agregação de receita. Definido uma única vez; todo consumidor
// usa IsActiveStatus em vez de recompor o conjunto.
var ActiveStatuses = []Status{StatusActive, StatusToday, StatusExpiring}

// IsActiveStatus informa se o status pertence ao conjunto ativo
func IsActiveStatus(s Status) bool {
	return s == StatusActive || s == StatusToday || s == StatusExpiring
}

// Midnight normaliza o instante para meia-noite do mesmo dia, no mesmo fuso
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween calcula a diferença em dias de calendário entre now e due,
// ambos normalizados para meia-noite. Round absorve a hora a mais/a menos
// de transições de horário de verão.
func DaysBetween(now, due time.Time) int {
	diff := Midnight(due).Sub(Midnight(now))
	return int(math.Round(diff.Hours() / 24))
}

// Classify mapeia uma data de vencimento (opcional) para o estado de ciclo de
// vida. Para datas vencidas DaysRemaining é negativo, com magnitude igual aos
// dias de atraso.
func Classify(due *time.Time, now time.Time) Classification {
	if due == nil {
		return Classification{Status: StatusNoDate, Label: LabelNoDate}
	}

	days := DaysBetween(now, *due)
	switch {
	case days < 0:
		return Classification{Status: StatusExpired, Label: LabelExpired, DaysRemaining: days}
	case days == 0:
		return Classification{Status: StatusToday, Label: LabelToday, DaysRemaining: 0}
	case days <= ExpiringThresholdDays:
		return Classification{Status: StatusExpiring, Label: LabelExpiring, DaysRemaining: days}
	default:
		return Classification{Status: StatusActive, Label: LabelActive, DaysRemaining: days}
	}
}

// ClassifyUnparsed cobre o caso de uma data armazenada que não pôde ser lida:
// mesmo status de "sem data", rótulo distinto para diagnóstico.
func ClassifyUnparsed() Classification {
	return Classification{Status: StatusNoDate, Label: LabelInvalidDate}
}

// Renew calcula a nova expiração com precisão de data/hora completa (membros
// de equipe). Se a expiração atual está ausente ou já passou, a base volta a
// ser "agora" - renovar nunca produz uma data no passado nem acumula atraso.
func Renew(current *time.Time, extensionDays int, now time.Time) time.Time {
	base := now
	if current != nil && current.After(now) {
		base = *current
	}
	return base.AddDate(0, 0, extensionDays)
}

// RenewDate calcula o novo vencimento com granularidade de dia (clientes).
// A comparação com "agora" também é por dia: um vencimento de hoje ainda
// conta como base válida e o resultado é idêntico ao reset para hoje.
func RenewDate(current *time.Time, extensionDays int, now time.Time) time.Time {
	today := Midnight(now)
	base := today
	if current != nil {
		due := Midnight(*current)
		if due.After(today) {
			base = due
		}
	}
	return base.AddDate(0, 0, extensionDays)
}
