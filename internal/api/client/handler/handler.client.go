// Package clienthdl - handlers HTTP do domain client.
package clienthdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/handler"
	clientdto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/dto"
	clientsvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/client/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/locale"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler trata o CRUD, a renovação e o import/export da carteira
type ClientHandler struct {
	ClientService *clientsvc.ClientService
}

// NewClientHandler cria o ClientHandler
func NewClientHandler() (*ClientHandler, error) {
	clientService, err := clientsvc.NewClientService()
	if err != nil {
		return nil, err
	}
	return &ClientHandler{ClientService: clientService}, nil
}

// HandleList GET /clients - carteira completa com classificação de vencimento
func (h *ClientHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clients, err := h.ClientService.FindByOwner(c.Context(), middleware.GetSession(c))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, clientsvc.Classified(clients, time.Now()), nil)
		return nil
	})
}

// HandleStats GET /clients/stats - resumo do dashboard por estado
func (h *ClientHandler) HandleStats(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		stats, err := h.ClientService.Stats(c.Context(), middleware.GetSession(c), time.Now())
		basehdl.HandleResponse(c, stats, err)
		return nil
	})
}

// HandleCreate POST /clients
func (h *ClientHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input clientdto.ClientCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		client, err := h.ClientService.Create(c.Context(), middleware.GetSession(c), &input)
		basehdl.HandleResponse(c, client, err)
		return nil
	})
}

// HandleUpdate PUT /clients/:id
func (h *ClientHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input clientdto.ClientUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		client, err := h.ClientService.Update(c.Context(), middleware.GetSession(c), id, &input)
		basehdl.HandleResponse(c, client, err)
		return nil
	})
}

// HandleDelete DELETE /clients/:id - exclusão definitiva confirmada na UI
func (h *ClientHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.ClientService.Delete(c.Context(), middleware.GetSession(c), id))
		return nil
	})
}

// HandleBulkDelete POST /clients/bulk-delete - lote tudo-ou-nada
func (h *ClientHandler) HandleBulkDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input clientdto.ClientBulkDeleteInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		ids := make([]primitive.ObjectID, 0, len(input.IDs))
		for _, raw := range input.IDs {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Identificador inválido: "+raw, common.StatusBadRequest, nil))
				return nil
			}
			ids = append(ids, id)
		}

		basehdl.HandleResponse(c, nil, h.ClientService.BulkDelete(c.Context(), middleware.GetSession(c), ids))
		return nil
	})
}

// HandleRenew POST /clients/:id/renew - avança o vencimento e registra a receita
func (h *ClientHandler) HandleRenew(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input clientdto.ClientRenewInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		client, txn, err := h.ClientService.Renew(c.Context(), middleware.GetSession(c), id, input.ExtensionDays)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		// Sucesso só é reportado com as duas escritas confirmadas
		basehdl.HandleResponse(c, fiber.Map{"client": client, "transaction": txn}, nil)
		return nil
	})
}

// HandleImportCSV POST /clients/import - corpo é o texto do arquivo CSV
func (h *ClientHandler) HandleImportCSV(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clients, err := clientsvc.ParseImportCSV(c.Body())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		inserted, err := h.ClientService.Import(c.Context(), middleware.GetSession(c), clients)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, fiber.Map{"imported": inserted}, nil)
		return nil
	})
}

// HandleExportCSV GET /clients/export - arquivo CSV da carteira atual
func (h *ClientHandler) HandleExportCSV(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		clients, err := h.ClientService.FindByOwner(c.Context(), middleware.GetSession(c))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		out, err := clientsvc.ExportCSV(clients, locale.BRL())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		c.Set("Content-Type", "text/csv; charset=utf-8")
		c.Set("Content-Disposition", `attachment; filename="clientes.csv"`)
		return c.SendString(out)
	})
}
