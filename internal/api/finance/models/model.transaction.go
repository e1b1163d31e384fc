// Package models - Transaction (transactions), eventos de receita do dono.
// Nunca criada diretamente pelo usuário: nasce como efeito colateral de um
// cadastro de cliente com valor ou de uma renovação com valor.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos de transação
const (
	TypeAdesao    = "adesao"    // primeiro pagamento, no cadastro do cliente
	TypeRenovacao = "renovacao" // pagamento de renovação
)

// Transaction registra um evento de receita. Imutável depois de criada,
// exceto pela exclusão. ClientName é snapshot: sobrevive à remoção do cliente.
type Transaction struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientId   primitive.ObjectID `json:"clientId,omitempty" bson:"clientId,omitempty"`
	ClientName string             `json:"clientName" bson:"clientName"`
	Value      float64            `json:"value" bson:"value"`
	Date       time.Time          `json:"date" bson:"date" index:"single;desc"`
	Type       string             `json:"type" bson:"type"`
	CreatedBy  string             `json:"createdBy" bson:"createdBy" index:"single"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
