// Package router registra as rotas do domain finance.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	financehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/finance/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
	apirouter "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/router"
)

// Register registra as rotas de transações no v1. Não existe rota de criação:
// transação de renovação nasce dentro do fluxo de renovação do cliente.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	financeHandler, err := financehdl.NewFinanceHandler()
	if err != nil {
		return fmt.Errorf("failed to create finance handler: %w", err)
	}

	authOnlyMiddleware := middleware.GetAuthManager().Authenticate()
	apirouter.RegisterRouteWithMiddleware(v1, "/transactions", "GET", "/", []fiber.Handler{authOnlyMiddleware}, financeHandler.HandleListMonth)
	apirouter.RegisterRouteWithMiddleware(v1, "/transactions", "GET", "/summary", []fiber.Handler{authOnlyMiddleware}, financeHandler.HandleSummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/transactions", "DELETE", "/:id", []fiber.Handler{authOnlyMiddleware}, financeHandler.HandleDelete)
	return nil
}
