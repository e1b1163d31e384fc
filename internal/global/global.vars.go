package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atendimentojatv-stack/firetvGESTOR/config"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/registry"
)

// MongoDB_CollectionName contém os nomes das collections do MongoDB
type MongoDB_CollectionName struct {
	Users          string // Contas da equipe (CEO, masters, revendedores)
	Clients        string // Clientes finais de cada revendedor
	Transactions   string // Lançamentos financeiros (adesão/renovação)
	BotConnections string // Documento de sessão do bot (um por conta)
	BotMessages    string // Fila de mensagens de saída do bot
}

// Variáveis globais da aplicação
var Validate *validator.Validate                                              // Validador de DTOs
var MongoDB_Session *mongo.Client                                             // Sessão de conexão com o MongoDB
var MongoDB_ServerConfig *config.Configuration                                // Configuração do servidor
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)    // Nomes das collections

// Registries
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry das collections
