// Package models - Client (clients), assinante de um revendedor.
// Cada registro pertence exclusivamente ao dono identificado em createdBy;
// não existe visibilidade entre donos diferentes.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status de registro do cliente
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Client é o assinante. DueDate tem semântica de data pura: comparações são
// feitas por dia de calendário no fuso local, nunca por horário.
type Client struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Whatsapp    string             `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	DueDate     *time.Time         `json:"dueDate,omitempty" bson:"dueDate,omitempty" index:"single;sparse"`
	Value       float64            `json:"value" bson:"value"`
	Username    string             `json:"username,omitempty" bson:"username,omitempty"`
	Observation string             `json:"observation,omitempty" bson:"observation,omitempty"`
	Status      string             `json:"status" bson:"status" index:"single"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy" index:"single"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
