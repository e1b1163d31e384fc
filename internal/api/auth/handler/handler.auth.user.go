// Package authhdl - handlers HTTP do domain auth.
package authhdl

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/dto"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	basehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
)

// AuthHandler trata cadastro, login e conta própria
type AuthHandler struct {
	UserService *authsvc.UserService
}

// NewAuthHandler cria o AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &AuthHandler{UserService: userService}, nil
}

// HandleSignUp POST /auth/signup - cria a conta e dispara a verificação
func (h *AuthHandler) HandleSignUp(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.SignUpInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.SignUp(c.Context(), &input)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleSignIn POST /auth/signin - autentica e retorna o token de sessão
func (h *AuthHandler) HandleSignIn(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.SignInInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.UserService.SignIn(c.Context(), &input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, fiber.Map{"user": user, "token": token}, nil)
		return nil
	})
}

// HandleSignOut POST /auth/signout - invalida a sessão em cache
func (h *AuthHandler) HandleSignOut(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		header := c.Get("Authorization")
		if token := strings.TrimPrefix(header, "Bearer "); token != header {
			middleware.GetAuthManager().InvalidateToken(token)
		}
		basehdl.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleVerifyEmail POST /auth/verify-email - confirma o e-mail pelo token
func (h *AuthHandler) HandleVerifyEmail(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.VerifyEmailInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.UserService.VerifyEmail(c.Context(), input.Token))
		return nil
	})
}

// HandleResendVerification POST /auth/resend-verification
func (h *AuthHandler) HandleResendVerification(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.ResendVerificationInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.UserService.ResendVerification(c.Context(), input.Email))
		return nil
	})
}

// HandleForgotPassword POST /auth/forgot-password - envia o link de redefinição
func (h *AuthHandler) HandleForgotPassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.PasswordResetRequestInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.UserService.RequestPasswordReset(c.Context(), input.Email))
		return nil
	})
}

// HandleResetPassword POST /auth/reset-password - redefine pelo token do link
func (h *AuthHandler) HandleResetPassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.PasswordResetInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.UserService.ResetPassword(c.Context(), &input))
		return nil
	})
}

// HandleMe GET /auth/me - dados atuais da conta autenticada
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		sess := middleware.GetSession(c)
		user, err := h.UserService.FindOneById(c.Context(), sess.UserID)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile PUT /auth/me - edita nome e empresa da conta
func (h *AuthHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.ProfileUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.UpdateProfile(c.Context(), middleware.GetSession(c), &input)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateEmail PUT /auth/me/email - troca o e-mail (exige a senha atual)
func (h *AuthHandler) HandleUpdateEmail(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UpdateEmailInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.UserService.UpdateEmail(c.Context(), middleware.GetSession(c), &input))
		return nil
	})
}

// HandleUpdatePassword PUT /auth/me/password - troca a senha (exige a atual)
func (h *AuthHandler) HandleUpdatePassword(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UpdatePasswordInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.UserService.UpdatePassword(c.Context(), middleware.GetSession(c), &input))
		return nil
	})
}

// HandleUpdateTemplates PUT /auth/me/templates - grava os templates customizados
func (h *AuthHandler) HandleUpdateTemplates(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.TemplatesUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.UserService.UpdateTemplates(c.Context(), middleware.GetSession(c), input.Templates)
		basehdl.HandleResponse(c, user, err)
		return nil
	})
}
