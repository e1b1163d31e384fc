// Package router registra as rotas do domain client: carteira, renovação e CSV.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	clienthdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
	apirouter "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/router"
)

// Register registra as rotas de clientes no v1. Tudo atrás de sessão.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	clientHandler, err := clienthdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("failed to create client handler: %w", err)
	}

	authOnlyMiddleware := middleware.GetAuthManager().Authenticate()
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/stats", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "PUT", "/:id", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "DELETE", "/:id", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/bulk-delete", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleBulkDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/:id/renew", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleRenew)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/import", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleImportCSV)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/export", []fiber.Handler{authOnlyMiddleware}, clientHandler.HandleExportCSV)
	return nil
}
