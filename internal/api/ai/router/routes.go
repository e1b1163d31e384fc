// Package router registra as rotas do assistente de escrita.
package router

import (
	"github.com/gofiber/fiber/v3"

	aihdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/ai/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
	apirouter "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/router"
)

// Register registra a rota de sugestão no v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	aiHandler := aihdl.NewAIHandler()

	authOnlyMiddleware := middleware.GetAuthManager().Authenticate()
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/suggest", []fiber.Handler{authOnlyMiddleware}, aiHandler.HandleSuggest)
	return nil
}
