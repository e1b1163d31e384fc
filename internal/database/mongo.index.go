// Package database - índices das collections do sistema (compound e únicos).
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
)

// CreateIndexes cria os índices usados pelas consultas do sistema.
// Idempotente: índice já existente não é tratado como erro.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// users: e-mail único (identidade de login e de ownership)
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: (parentId, status) — roster de membros diretos
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "parentId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("user_parent_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// clients: (createdBy, status) — listagem por dono
	clients := db.Collection(global.MongoDB_ColNames.Clients)
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdBy", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("client_owner_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// clients: (createdBy, dueDate) — classificação e filtros por vencimento
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdBy", Value: 1},
			{Key: "dueDate", Value: 1},
		},
		Options: options.Index().SetName("client_owner_due").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// transactions: (createdBy, date) — extrato mensal
	transactions := db.Collection(global.MongoDB_ColNames.Transactions)
	if _, err := transactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdBy", Value: 1},
			{Key: "date", Value: -1},
		},
		Options: options.Index().SetName("transaction_owner_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// bot_connections: um documento por dono
	botConns := db.Collection(global.MongoDB_ColNames.BotConnections)
	if _, err := botConns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerId", Value: 1}},
		Options: options.Index().SetName("bot_connection_owner_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// bot_messages: (ownerId, status, createdAt) — varredura da fila pendente em ordem
	botMessages := db.Collection(global.MongoDB_ColNames.BotMessages)
	if _, err := botMessages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("bot_message_owner_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
