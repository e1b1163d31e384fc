// Package bothdl - handlers HTTP do domain bot: sessão, fila e envio.
package bothdl

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	basehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/handler"
	botdto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/bot/dto"
	botsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/bot/service"
	clientmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/models"
	clientsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/lifecycle"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/template"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/locale"
)

// BotHandler trata a sessão do bot e o envio de mensagens da carteira
type BotHandler struct {
	BotService    *botsvc.BotService
	ClientService *clientsvc.ClientService
	UserService   *authsvc.UserService
}

// NewBotHandler cria o BotHandler
func NewBotHandler() (*BotHandler, error) {
	botService, err := botsvc.NewBotService()
	if err != nil {
		return nil, err
	}
	clientService, err := clientsvc.NewClientService()
	if err != nil {
		return nil, err
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &BotHandler{
		BotService:    botService,
		ClientService: clientService,
		UserService:   userService,
	}, nil
}

// HandleGet GET /bot - estado atual da sessão
func (h *BotHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		conn, err := h.BotService.Get(c.Context(), middleware.GetSession(c))
		basehdl.HandleResponse(c, conn, err)
		return nil
	})
}

// HandleConnect POST /bot/connect
func (h *BotHandler) HandleConnect(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		conn, err := h.BotService.Connect(c.Context(), middleware.GetSession(c))
		basehdl.HandleResponse(c, conn, err)
		return nil
	})
}

// HandleCancel POST /bot/cancel - desiste da conexão em andamento
func (h *BotHandler) HandleCancel(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		conn, err := h.BotService.Cancel(c.Context(), middleware.GetSession(c))
		basehdl.HandleResponse(c, conn, err)
		return nil
	})
}

// HandleDisconnect POST /bot/disconnect
func (h *BotHandler) HandleDisconnect(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		conn, err := h.BotService.Disconnect(c.Context(), middleware.GetSession(c))
		basehdl.HandleResponse(c, conn, err)
		return nil
	})
}

// HandleForceLogout POST /bot/force-logout - derrubada administrativa
func (h *BotHandler) HandleForceLogout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		conn, err := h.BotService.ForceLogout(c.Context(), middleware.GetSession(c))
		basehdl.HandleResponse(c, conn, err)
		return nil
	})
}

// HandleOutbox GET /bot/messages - fila de saída do dono
func (h *BotHandler) HandleOutbox(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page, limit := basehdl.ParsePagination(c)
		result, err := h.BotService.OutboxPage(c.Context(), middleware.GetSession(c), page, limit)
		basehdl.HandleResponse(c, result, err)
		return nil
	})
}

// composeMessage resolve o template do dono e renderiza o texto do cliente
func (h *BotHandler) composeMessage(ctx context.Context, sess *authmodels.Session, client *clientmodels.Client, templateKey string) string {
	class := lifecycle.Classify(client.DueDate, time.Now())

	key := template.Key(templateKey)
	if templateKey == "" {
		// Sem chave explícita vale o status atual do cliente
		key = template.Key(class.Status)
	}

	// Templates customizados e nome da empresa saem do cadastro atual do dono
	var custom map[string]string
	company := sess.CompanyName
	if owner, err := h.UserService.FindOneById(ctx, sess.UserID); err == nil {
		custom = owner.MessageTemplates
		company = owner.CompanyName
	}

	res := template.Resolve(custom, key)
	return template.Render(res.Text, template.Fields{
		Name:          client.Name,
		DueDate:       client.DueDate,
		DaysRemaining: class.DaysRemaining,
		CompanyName:   company,
		Value:         client.Value,
	}, locale.BRL())
}

// HandleSend POST /bot/send - enfileira uma mensagem para um cliente
func (h *BotHandler) HandleSend(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input botdto.SendMessageInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		clientID, err := primitive.ObjectIDFromHex(input.ClientID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Identificador inválido: "+input.ClientID, common.StatusBadRequest, nil))
			return nil
		}

		sess := middleware.GetSession(c)
		client, err := h.ClientService.FindOne(c.Context(), map[string]interface{}{"_id": clientID, "createdBy": sess.Email}, nil)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		body := input.Text
		if body == "" {
			body = h.composeMessage(c.Context(), sess, &client, input.TemplateKey)
		}

		msg, err := h.BotService.Enqueue(c.Context(), sess, client.Whatsapp, body, client.Name)
		basehdl.HandleResponse(c, msg, err)
		return nil
	})
}

// HandleBulkSend POST /bot/bulk-send - enfileira para vários clientes.
// A fila só aceita com a sessão conectada; a primeira falha interrompe o lote.
func (h *BotHandler) HandleBulkSend(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input botdto.BulkSendInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		sess := middleware.GetSession(c)
		queued := 0
		for _, raw := range input.ClientIDs {
			clientID, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Identificador inválido: "+raw, common.StatusBadRequest, nil))
				return nil
			}

			client, err := h.ClientService.FindOne(c.Context(), map[string]interface{}{"_id": clientID, "createdBy": sess.Email}, nil)
			if err != nil {
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
			if client.Whatsapp == "" {
				continue
			}

			body := h.composeMessage(c.Context(), sess, &client, input.TemplateKey)
			if _, err := h.BotService.Enqueue(c.Context(), sess, client.Whatsapp, body, client.Name); err != nil {
				basehdl.HandleResponse(c, nil, err)
				return nil
			}
			queued++
		}

		basehdl.HandleResponse(c, fiber.Map{"queued": queued}, nil)
		return nil
	})
}

// HandleRelayStatus POST /bot/relay/status - único caminho de escrita do
// status. Autenticado pelo token da ponte, não por sessão de usuário.
func (h *BotHandler) HandleRelayStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		token := global.MongoDB_ServerConfig.BotBridgeToken
		provided := c.Get("X-Bridge-Token")
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(provided)) != 1 {
			basehdl.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}

		var input botdto.RelayStatusInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		conn, err := h.BotService.ApplyRelayStatus(c.Context(), input.OwnerId, input.Status, input.QrCode)
		basehdl.HandleResponse(c, conn, err)
		return nil
	})
}
