package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/atendimentojatv-stack/firetvGESTOR/config"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/database"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
)

// InitGlobal inicializa as variáveis globais da aplicação
func InitGlobal() {
	initColNames()         // Nomes das collections do banco
	initValidator()        // Validator dos DTOs
	initConfig()           // Configuração do servidor
	initDatabase_MongoDB() // Conexão com o banco
}

// initColNames define os nomes das collections no banco
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Clients = "clients"
	global.MongoDB_ColNames.Transactions = "transactions"
	global.MongoDB_ColNames.BotConnections = "bot_connections"
	global.MongoDB_ColNames.BotMessages = "bot_messages"

	logrus.Info("Initialized collection names")
}

// initValidator registra o validator e as validações customizadas
// (whatsapp, member_role, template_key, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig carrega a configuração do servidor via env
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB abre a conexão e garante os índices das collections
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreateIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}
