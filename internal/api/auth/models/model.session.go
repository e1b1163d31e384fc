// Package models - Session, o contexto imutável da requisição autenticada.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session é a fotografia do usuário autenticado no momento da requisição.
// Montada uma vez pelo middleware de autenticação e passada explicitamente
// adiante; nenhum service lê estado de sessão de variável global. Trocar de
// usuário significa construir uma Session nova, nunca mutar esta.
type Session struct {
	UserID      primitive.ObjectID `json:"userId"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	Name        string             `json:"name"`
	CompanyName string             `json:"companyName"`
}

// IsCEO informa se a sessão pertence à conta CEO de bootstrap
func (s *Session) IsCEO() bool {
	return s.Role == RoleCEO
}
