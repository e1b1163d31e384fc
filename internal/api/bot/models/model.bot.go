// Package models - sessão do bot de WhatsApp (bot_connections) e fila de
// mensagens de saída (bot_messages), uma sessão por conta dona.
//
// O console nunca escreve o campo status: ele grava pedidos em action e
// observa o status resultante, escrito apenas pelo relay externo.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados da sessão, escritos pelo relay
const (
	StatusDisconnected  = "disconnected"
	StatusInitializing  = "initializing"
	StatusConnected     = "connected"
	StatusDisconnecting = "disconnecting"
)

// Ações pedidas pelo console
const (
	ActionIdle        = "idle"
	ActionStart       = "start"
	ActionLogout      = "logout"
	ActionForceLogout = "force_logout"
)

// Estados da mensagem na fila de saída
const (
	MessageStatusPending = "pending"
	MessageStatusSent    = "sent"
	MessageStatusFailed  = "failed"
)

// MessageTypeText é o único tipo de mensagem suportado pela fila
const MessageTypeText = "text"

// BotConnection é o documento único de sessão da conta.
// QrCode é transitório: aparece durante a negociação e some ao conectar.
type BotConnection struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerId   string             `json:"ownerId" bson:"ownerId" index:"unique"`
	Status    string             `json:"status" bson:"status"`
	Action    string             `json:"action" bson:"action"`
	QrCode    string             `json:"qrCode,omitempty" bson:"qrCode,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// BotMessage é uma entrada append-only da fila de saída: escrita pelo
// console, consumida pelo relay.
type BotMessage struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerId    string             `json:"ownerId" bson:"ownerId" index:"single"`
	To         string             `json:"to" bson:"to"`
	Body       string             `json:"body" bson:"body"`
	Type       string             `json:"type" bson:"type"`
	Status     string             `json:"status" bson:"status" index:"single"`
	ClientName string             `json:"clientName,omitempty" bson:"clientName,omitempty"`
	Error      string             `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
