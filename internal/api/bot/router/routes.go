// Package router registra as rotas do domain bot: sessão, envio e relay.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bothdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/bot/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
	apirouter "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/router"
)

// Register registra as rotas do bot no v1. A rota do relay é pública no
// sentido de sessão: ela é autenticada pelo token da ponte dentro do handler.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	botHandler, err := bothdl.NewBotHandler()
	if err != nil {
		return fmt.Errorf("failed to create bot handler: %w", err)
	}

	// Único caminho de escrita do status/qrCode (relay externo)
	v1.Post("/bot/relay/status", botHandler.HandleRelayStatus)

	authOnlyMiddleware := middleware.GetAuthManager().Authenticate()
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "GET", "/", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "POST", "/connect", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleConnect)
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "POST", "/cancel", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleCancel)
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "POST", "/disconnect", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleDisconnect)
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "POST", "/force-logout", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleForceLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "GET", "/messages", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleOutbox)
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "POST", "/send", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleSend)
	apirouter.RegisterRouteWithMiddleware(v1, "/bot", "POST", "/bulk-send", []fiber.Handler{authOnlyMiddleware}, botHandler.HandleBulkSend)
	return nil
}
