// Package router registra as rotas do domain auth: conta, sessão e equipe.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/handler"
	basehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
	apirouter "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/router"
)

// Register registra todas as rotas auth (públicas, conta, equipe) no v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	registerSystemRoutes(v1)
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerMemberRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) {
	systemHandler := basehdl.NewSystemHandler()
	router.Get("/system/health", systemHandler.HandleHealth)
}

func registerAuthRoutes(router fiber.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %w", err)
	}

	// Rotas públicas: criação de conta e recuperação não exigem sessão
	router.Post("/auth/signup", authHandler.HandleSignUp)
	router.Post("/auth/signin", authHandler.HandleSignIn)
	router.Post("/auth/verify-email", authHandler.HandleVerifyEmail)
	router.Post("/auth/resend-verification", authHandler.HandleResendVerification)
	router.Post("/auth/forgot-password", authHandler.HandleForgotPassword)
	router.Post("/auth/reset-password", authHandler.HandleResetPassword)

	authOnlyMiddleware := middleware.GetAuthManager().Authenticate()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/signout", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleSignOut)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/email", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleUpdateEmail)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/password", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleUpdatePassword)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/templates", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleUpdateTemplates)
	return nil
}

func registerMemberRoutes(router fiber.Router) error {
	memberHandler, err := authhdl.NewMemberHandler()
	if err != nil {
		return fmt.Errorf("failed to create member handler: %w", err)
	}

	authOnlyMiddleware := middleware.GetAuthManager().Authenticate()
	apirouter.RegisterRouteWithMiddleware(router, "/members", "GET", "/", []fiber.Handler{authOnlyMiddleware}, memberHandler.HandleRoster)
	apirouter.RegisterRouteWithMiddleware(router, "/members", "POST", "/", []fiber.Handler{authOnlyMiddleware}, memberHandler.HandleInvite)
	apirouter.RegisterRouteWithMiddleware(router, "/members", "PUT", "/:id", []fiber.Handler{authOnlyMiddleware}, memberHandler.HandleUpdateMember)
	apirouter.RegisterRouteWithMiddleware(router, "/members", "POST", "/:id/renew", []fiber.Handler{authOnlyMiddleware}, memberHandler.HandleRenewMember)
	apirouter.RegisterRouteWithMiddleware(router, "/members", "DELETE", "/:id", []fiber.Handler{authOnlyMiddleware}, memberHandler.HandleDeleteMember)
	return nil
}
