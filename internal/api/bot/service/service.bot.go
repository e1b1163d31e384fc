// Package botsvc - sessão do bot e fila de mensagens.
//
// A máquina de estados (disconnected → initializing → connected →
// disconnecting → disconnected) é dirigida pelo relay; o console apenas
// valida e grava pedidos (action). force_logout é a única aresta
// administrativa que vale de qualquer estado.
package botsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	basemodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/models"
	basesvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/service"
	botmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/bot/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
)

// BotService trata a sessão do bot e a fila de saída da conta dona
type BotService struct {
	connections *basesvc.BaseServiceMongoImpl[botmodels.BotConnection]
	messages    *basesvc.BaseServiceMongoImpl[botmodels.BotMessage]
}

// NewBotService cria o BotService a partir das collections registradas
func NewBotService() (*BotService, error) {
	connColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BotConnections)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.MongoDB_ColNames.BotConnections, common.ErrNotFound)
	}
	msgColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BotMessages)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.MongoDB_ColNames.BotMessages, common.ErrNotFound)
	}
	return &BotService{
		connections: basesvc.NewBaseServiceMongo[botmodels.BotConnection](connColl),
		messages:    basesvc.NewBaseServiceMongo[botmodels.BotMessage](msgColl),
	}, nil
}

// Messages expõe o service da fila (usado pelo dispatcher)
func (s *BotService) Messages() *basesvc.BaseServiceMongoImpl[botmodels.BotMessage] {
	return s.messages
}

// ValidateRequest valida o pedido de ação contra o estado atual da sessão.
// Função pura; a tabela é a única fonte das regras de transição.
func ValidateRequest(currentStatus, currentAction, requested string) error {
	switch requested {
	case botmodels.ActionStart:
		// Conectar só vale a partir de desconectado, sem pedido pendente
		if currentStatus != botmodels.StatusDisconnected || currentAction == botmodels.ActionStart {
			return common.NewError(common.ErrCodeBusinessState, "O bot já está conectado ou em conexão", common.StatusConflict, nil)
		}
	case botmodels.ActionIdle:
		// Cancelamento: só enquanto a negociação não terminou
		if currentStatus != botmodels.StatusInitializing && currentAction != botmodels.ActionStart {
			return common.NewError(common.ErrCodeBusinessState, "Não há conexão em andamento para cancelar", common.StatusConflict, nil)
		}
	case botmodels.ActionLogout:
		if currentStatus != botmodels.StatusConnected {
			return common.NewError(common.ErrCodeBusinessState, "O bot não está conectado", common.StatusConflict, nil)
		}
	case botmodels.ActionForceLogout:
		// Aresta administrativa: vale de qualquer estado
	default:
		return common.ErrInvalidState
	}
	return nil
}

// Get retorna o documento de sessão do dono, criando o estado inicial
// (desconectado, sem pedido) na primeira consulta.
func (s *BotService) Get(ctx context.Context, sess *authmodels.Session) (*botmodels.BotConnection, error) {
	if err := authsvc.Can(sess, authsvc.VerbView, authsvc.ResourceBot, nil); err != nil {
		return nil, err
	}

	update := basesvc.UpdateData{SetOnInsert: bson.M{
		"status": botmodels.StatusDisconnected,
		"action": botmodels.ActionIdle,
	}}
	conn, err := s.connections.Upsert(ctx, bson.M{"ownerId": sess.Email}, update)
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// request grava o pedido de ação depois de validar a transição
func (s *BotService) request(ctx context.Context, sess *authmodels.Session, action string, clearQr bool) (*botmodels.BotConnection, error) {
	if err := authsvc.Can(sess, authsvc.VerbEdit, authsvc.ResourceBot, nil); err != nil {
		return nil, err
	}

	conn, err := s.Get(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := ValidateRequest(conn.Status, conn.Action, action); err != nil {
		return nil, err
	}

	update := basesvc.UpdateData{Set: bson.M{"action": action}}
	if clearQr {
		update.Unset = bson.M{"qrCode": ""}
	}
	updated, err := s.connections.UpdateById(ctx, conn.ID, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Connect pede a abertura da sessão. O sucesso chega de forma assíncrona
// quando o relay mover o status para connected; enquanto isso o console
// mostra o pedido como pendente e cancelável, nunca como erro.
func (s *BotService) Connect(ctx context.Context, sess *authmodels.Session) (*botmodels.BotConnection, error) {
	return s.request(ctx, sess, botmodels.ActionStart, false)
}

// Cancel desiste da conexão em andamento e descarta o QR pendente
func (s *BotService) Cancel(ctx context.Context, sess *authmodels.Session) (*botmodels.BotConnection, error) {
	return s.request(ctx, sess, botmodels.ActionIdle, true)
}

// Disconnect pede o encerramento gracioso da sessão conectada
func (s *BotService) Disconnect(ctx context.Context, sess *authmodels.Session) (*botmodels.BotConnection, error) {
	return s.request(ctx, sess, botmodels.ActionLogout, false)
}

// ForceLogout derruba a sessão de qualquer estado, sem negociação
func (s *BotService) ForceLogout(ctx context.Context, sess *authmodels.Session) (*botmodels.BotConnection, error) {
	return s.request(ctx, sess, botmodels.ActionForceLogout, true)
}

// ApplyRelayStatus aplica o estado reportado pelo relay (único escritor de
// status). Chegando a um estado estável o pedido pendente é limpo.
func (s *BotService) ApplyRelayStatus(ctx context.Context, ownerId, status, qrCode string) (*botmodels.BotConnection, error) {
	switch status {
	case botmodels.StatusDisconnected, botmodels.StatusInitializing,
		botmodels.StatusConnected, botmodels.StatusDisconnecting:
	default:
		return nil, common.ErrInvalidState
	}

	set := bson.M{"status": status}
	unset := bson.M{}
	if qrCode != "" {
		set["qrCode"] = qrCode
	} else {
		unset["qrCode"] = ""
	}
	if status == botmodels.StatusConnected || status == botmodels.StatusDisconnected {
		set["action"] = botmodels.ActionIdle
	}

	updated, err := s.connections.UpdateOne(ctx, bson.M{"ownerId": ownerId}, basesvc.UpdateData{Set: set, Unset: unset})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Enqueue coloca uma mensagem na fila de saída do dono. Falha imediata com
// canal indisponível se a sessão não estiver conectada: nada é gravado.
func (s *BotService) Enqueue(ctx context.Context, sess *authmodels.Session, to, body, clientName string) (*botmodels.BotMessage, error) {
	if err := authsvc.Can(sess, authsvc.VerbCreate, authsvc.ResourceBot, nil); err != nil {
		return nil, err
	}
	if to == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Cliente sem WhatsApp cadastrado", common.StatusBadRequest, nil)
	}

	conn, err := s.Get(ctx, sess)
	if err != nil {
		return nil, err
	}
	if conn.Status != botmodels.StatusConnected {
		return nil, common.ErrChannelUnavailable
	}

	msg := botmodels.BotMessage{
		OwnerId:    sess.Email,
		To:         to,
		Body:       body,
		Type:       botmodels.MessageTypeText,
		Status:     botmodels.MessageStatusPending,
		ClientName: clientName,
	}
	created, err := s.messages.InsertOne(ctx, msg)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ConnectionStatus retorna o status atual da sessão do dono informado.
// Dono sem documento de sessão conta como desconectado.
func (s *BotService) ConnectionStatus(ctx context.Context, ownerId string) (string, error) {
	conn, err := s.connections.FindOne(ctx, bson.M{"ownerId": ownerId}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return botmodels.StatusDisconnected, nil
		}
		return "", err
	}
	return conn.Status, nil
}

// PendingMessages lista as mensagens aguardando entrega, mais antigas primeiro
func (s *BotService) PendingMessages(ctx context.Context, limit int64) ([]botmodels.BotMessage, error) {
	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(limit)
	return s.messages.Find(ctx, bson.M{"status": botmodels.MessageStatusPending}, opts)
}

// MarkSent marca a mensagem como entregue ao relay
func (s *BotService) MarkSent(ctx context.Context, msg *botmodels.BotMessage) error {
	_, err := s.messages.UpdateById(ctx, msg.ID, basesvc.UpdateData{Set: bson.M{"status": botmodels.MessageStatusSent}})
	return err
}

// MarkFailed marca a mensagem como falhada com o motivo
func (s *BotService) MarkFailed(ctx context.Context, msg *botmodels.BotMessage, reason string) error {
	_, err := s.messages.UpdateById(ctx, msg.ID, basesvc.UpdateData{Set: bson.M{
		"status": botmodels.MessageStatusFailed,
		"error":  reason,
	}})
	return err
}

// OutboxPage lista a fila de saída do dono, mais recentes primeiro
func (s *BotService) OutboxPage(ctx context.Context, sess *authmodels.Session, page, limit int64) (*basemodels.PaginateResult[botmodels.BotMessage], error) {
	if err := authsvc.Can(sess, authsvc.VerbView, authsvc.ResourceBot, nil); err != nil {
		return nil, err
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.messages.FindWithPagination(ctx, bson.M{"ownerId": sess.Email}, page, limit, opts)
}

// Subscribe abre uma assinatura de snapshot do documento de sessão do dono
func (s *BotService) Subscribe(sess *authmodels.Session) *basesvc.SnapshotStream[botmodels.BotConnection] {
	return basesvc.NewSnapshotStream[botmodels.BotConnection](s.connections, bson.M{"ownerId": sess.Email}, nil)
}
