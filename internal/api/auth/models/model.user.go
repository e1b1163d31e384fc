// Package models - User (users), conta de membro da equipe de revenda.
// A hierarquia é uma árvore de dois níveis: o CEO de bootstrap no topo,
// masters/revendedores abaixo, ligados ao criador via ParentId (e-mail).
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Papéis de acesso - enum plano, sem herança
const (
	RoleCEO      = "ceo"
	RoleMaster   = "master"
	RoleReseller = "reseller"
)

// Planos de assinatura do painel
const (
	PlanTrial     = "trial"
	PlanRenewed   = "renewed"
	PlanUnlimited = "unlimited"
)

// Status de registro do membro. Contas nunca são removidas fisicamente por
// usuários comuns: a exclusão marca deleted e some das listagens.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// ParentSystem identifica contas sem criador humano (bootstrap e
// auto-provisionamento no primeiro login)
const ParentSystem = "system"

// User é a conta de um membro da equipe.
// PanelExpiration guarda data e hora completas, diferente do vencimento de
// cliente que é data pura. A conta CEO é isenta dessa verificação.
type User struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Uid               string             `json:"uid" bson:"uid,omitempty"`
	Email             string             `json:"email" bson:"email" index:"unique"`
	Role              string             `json:"role" bson:"role"`
	ParentId          string             `json:"parentId" bson:"parentId" index:"single"`
	Name              string             `json:"name" bson:"name"`
	Status            string             `json:"status" bson:"status" index:"single"`
	Plan              string             `json:"plan" bson:"plan"`
	PanelExpiration   *time.Time         `json:"panelExpiration,omitempty" bson:"panelExpiration,omitempty"`
	CompanyName       string             `json:"companyName,omitempty" bson:"companyName,omitempty"`
	MessageTemplates  map[string]string  `json:"messageTemplates,omitempty" bson:"messageTemplates,omitempty"`
	Password          string             `json:"-" bson:"password,omitempty"`
	EmailVerified     bool               `json:"emailVerified" bson:"emailVerified"`
	VerificationToken string             `json:"-" bson:"verificationToken,omitempty"`
	ResetToken        string             `json:"-" bson:"resetToken,omitempty"`
	ResetTokenExpiry  int64              `json:"-" bson:"resetTokenExpiry,omitempty"`
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsCEO informa se a conta é o CEO de bootstrap
func (u *User) IsCEO() bool {
	return u.Role == RoleCEO
}
