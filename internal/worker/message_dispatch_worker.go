// Package worker - MessageDispatchWorker entrega a fila de mensagens de saída
// (bot_messages) ao relay do WhatsApp em ciclos curtos.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	botmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/bot/models"
	botsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/bot/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/logger"
)

// dispatchBatchSize limita quantas mensagens saem por ciclo
const dispatchBatchSize = 50

// MessageDispatchWorker varre as mensagens pendentes e as envia ao endpoint
// do relay. Mensagens de donos com sessão fora de connected permanecem
// pendentes até a sessão voltar; falha de entrega marca failed com o motivo.
type MessageDispatchWorker struct {
	botService *botsvc.BotService
	bridgeURL  string
	token      string
	interval   time.Duration
	httpClient *http.Client
}

// NewMessageDispatchWorker cria o worker com a configuração da ponte.
// BridgeURL vazia desliga o worker (Start retorna de imediato).
func NewMessageDispatchWorker() (*MessageDispatchWorker, error) {
	botService, err := botsvc.NewBotService()
	if err != nil {
		return nil, err
	}

	cfg := global.MongoDB_ServerConfig
	interval := time.Duration(cfg.BotPollSeconds) * time.Second
	if interval < time.Second {
		interval = 5 * time.Second
	}

	return &MessageDispatchWorker{
		botService: botService,
		bridgeURL:  cfg.BotBridgeURL,
		token:      cfg.BotBridgeToken,
		interval:   interval,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Start roda o worker em loop até o contexto encerrar
func (w *MessageDispatchWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	if w.bridgeURL == "" {
		log.Info("📨 [MESSAGE_DISPATCH] BOT_BRIDGE_URL vazio, worker de entrega desligado")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
		"bridge":   w.bridgeURL,
	}).Info("📨 [MESSAGE_DISPATCH] Iniciando worker de entrega de mensagens...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📨 [MESSAGE_DISPATCH] Worker de entrega encerrado")
			return
		case <-ticker.C:
			w.runBatch(ctx, log)
		}
	}
}

// runBatch entrega um lote de mensagens pendentes
func (w *MessageDispatchWorker) runBatch(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("📨 [MESSAGE_DISPATCH] Panic no ciclo de entrega, seguindo para o próximo")
		}
	}()

	pending, err := w.botService.PendingMessages(ctx, dispatchBatchSize)
	if err != nil {
		log.WithError(err).Error("📨 [MESSAGE_DISPATCH] Erro ao buscar mensagens pendentes")
		return
	}
	if len(pending) == 0 {
		return
	}

	// Cache do status de sessão por dono dentro do ciclo
	statusByOwner := map[string]string{}
	delivered := 0

	for i := range pending {
		msg := &pending[i]

		status, ok := statusByOwner[msg.OwnerId]
		if !ok {
			status, err = w.botService.ConnectionStatus(ctx, msg.OwnerId)
			if err != nil {
				log.WithError(err).WithField("ownerId", msg.OwnerId).Warn("📨 [MESSAGE_DISPATCH] Erro ao consultar sessão do dono, pulando")
				continue
			}
			statusByOwner[msg.OwnerId] = status
		}
		if status != botmodels.StatusConnected {
			// Sessão caiu depois do enfileiramento; a mensagem espera
			continue
		}

		if err := w.deliver(ctx, msg); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"messageId": msg.ID.Hex(),
				"ownerId":   msg.OwnerId,
			}).Warn("📨 [MESSAGE_DISPATCH] Entrega falhou")
			if markErr := w.botService.MarkFailed(ctx, msg, err.Error()); markErr != nil {
				log.WithError(markErr).Error("📨 [MESSAGE_DISPATCH] Erro ao marcar mensagem como failed")
			}
			continue
		}

		if err := w.botService.MarkSent(ctx, msg); err != nil {
			log.WithError(err).Error("📨 [MESSAGE_DISPATCH] Erro ao marcar mensagem como sent")
			continue
		}
		delivered++
	}

	if delivered > 0 {
		log.WithFields(map[string]interface{}{
			"delivered": delivered,
			"batch":     len(pending),
		}).Info("📨 [MESSAGE_DISPATCH] Lote entregue")
	}
}

// deliver envia uma mensagem ao endpoint do relay
func (w *MessageDispatchWorker) deliver(ctx context.Context, msg *botmodels.BotMessage) error {
	payload, err := json.Marshal(map[string]string{
		"ownerId":    msg.OwnerId,
		"to":         msg.To,
		"body":       msg.Body,
		"type":       msg.Type,
		"clientName": msg.ClientName,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.bridgeURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay respondeu %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
