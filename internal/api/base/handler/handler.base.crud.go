// Package basehdl fornece a infraestrutura comum dos handlers HTTP:
// parse/validação de entrada e operações genéricas de leitura usadas pelos
// handlers de domínio.
package basehdl

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
)

// BaseHandler carrega o service base e os helpers de request/response.
// Handlers de domínio embutem este tipo.
type BaseHandler[T any] struct {
	BaseService basesvc.BaseServiceMongo[T]
}

// NewBaseHandler cria um BaseHandler para o service informado
func NewBaseHandler[T any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T] {
	return &BaseHandler[T]{BaseService: baseService}
}

// ParseRequestBody faz parse do body JSON e valida o DTO com o validador global.
// json.Decoder com UseNumber preserva a precisão de valores monetários.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParseObjectID lê um parâmetro de rota como ObjectID
func ParseObjectID(c fiber.Ctx, param string) (primitive.ObjectID, error) {
	raw := c.Params(param)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"Identificador inválido: "+raw,
			common.StatusBadRequest,
			nil,
		)
	}
	return id, nil
}

// ParsePagination lê page/limit da query string com defaults seguros
func ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return page, limit
}

// FindOneById handler genérico GET /find-by-id/:id
func (h *BaseHandler[T]) FindOneById(c fiber.Ctx) error {
	return SafeHandler(c, func() error {
		id, err := ParseObjectID(c, "id")
		if err != nil {
			HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOneById(c.Context(), id)
		HandleResponse(c, data, err)
		return nil
	})
}
