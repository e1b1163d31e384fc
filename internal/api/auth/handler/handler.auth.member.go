// Package authhdl - handlers de gestão da equipe.
package authhdl

import (
	"github.com/gofiber/fiber/v3"

	authdto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/dto"
	authsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/service"
	basehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
)

// MemberHandler trata o roster e as operações sobre membros da equipe
type MemberHandler struct {
	UserService *authsvc.UserService
}

// NewMemberHandler cria o MemberHandler
func NewMemberHandler() (*MemberHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &MemberHandler{UserService: userService}, nil
}

// HandleRoster GET /members - equipe visível para a sessão
func (h *MemberHandler) HandleRoster(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		members, err := h.UserService.Roster(c.Context(), middleware.GetSession(c))
		basehdl.HandleResponse(c, members, err)
		return nil
	})
}

// HandleInvite POST /members - cria um membro por convite
func (h *MemberHandler) HandleInvite(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.MemberInviteInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		member, err := h.UserService.Invite(c.Context(), middleware.GetSession(c), &input)
		basehdl.HandleResponse(c, member, err)
		return nil
	})
}

// HandleUpdateMember PUT /members/:id
func (h *MemberHandler) HandleUpdateMember(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.MemberUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		member, err := h.UserService.UpdateMember(c.Context(), middleware.GetSession(c), id, &input)
		basehdl.HandleResponse(c, member, err)
		return nil
	})
}

// HandleRenewMember POST /members/:id/renew - estende o acesso ao painel
func (h *MemberHandler) HandleRenewMember(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.MemberRenewInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		member, err := h.UserService.RenewMember(c.Context(), middleware.GetSession(c), id, input.ExtensionDays)
		basehdl.HandleResponse(c, member, err)
		return nil
	})
}

// HandleDeleteMember DELETE /members/:id - exclusão lógica do membro
func (h *MemberHandler) HandleDeleteMember(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.UserService.DeleteMember(c.Context(), middleware.GetSession(c), id))
		return nil
	})
}
