// Package aihdl - handler do assistente de escrita de mensagens.
package aihdl

import (
	"github.com/gofiber/fiber/v3"

	aidto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/ai/dto"
	basehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/handler"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/ai"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
)

// AIHandler expõe o assistente de sugestão de texto
type AIHandler struct {
	Assistant *ai.Assistant
}

// NewAIHandler cria o AIHandler com a configuração do servidor
func NewAIHandler() *AIHandler {
	return &AIHandler{Assistant: ai.NewAssistant(global.MongoDB_ServerConfig)}
}

// HandleSuggest POST /ai/suggest - retorna a sugestão do modelo.
// A falha já vem com texto pronto para exibição depois das tentativas.
func (h *AIHandler) HandleSuggest(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input aidto.SuggestInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		text, err := h.Assistant.Suggest(c.Context(), input.Prompt)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, fiber.Map{"suggestion": text}, nil)
		return nil
	})
}
