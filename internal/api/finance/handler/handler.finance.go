// Package financehdl - handlers HTTP do domain finance.
package financehdl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/handler"
	financesvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/finance/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/middleware"
)

// FinanceHandler trata a listagem e o resumo das transações
type FinanceHandler struct {
	FinanceService *financesvc.FinanceService
}

// NewFinanceHandler cria o FinanceHandler
func NewFinanceHandler() (*FinanceHandler, error) {
	financeService, err := financesvc.NewFinanceService()
	if err != nil {
		return nil, err
	}
	return &FinanceHandler{FinanceService: financeService}, nil
}

// parseMonth lê year/month da query, padrão mês corrente
func parseMonth(c fiber.Ctx) (int, time.Month) {
	now := time.Now()
	year, err := strconv.Atoi(c.Query("year", ""))
	if err != nil || year < 2000 || year > 2200 {
		year = now.Year()
	}
	monthNum, err := strconv.Atoi(c.Query("month", ""))
	if err != nil || monthNum < 1 || monthNum > 12 {
		monthNum = int(now.Month())
	}
	return year, time.Month(monthNum)
}

// HandleListMonth GET /transactions?year=&month= - transações do mês
func (h *FinanceHandler) HandleListMonth(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		year, month := parseMonth(c)
		transactions, err := h.FinanceService.ListMonth(c.Context(), middleware.GetSession(c), year, month)
		basehdl.HandleResponse(c, transactions, err)
		return nil
	})
}

// HandleSummary GET /transactions/summary?year=&month= - resumo do mês
func (h *FinanceHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		year, month := parseMonth(c)
		summary, err := h.FinanceService.SummarizeMonth(c.Context(), middleware.GetSession(c), year, month)
		basehdl.HandleResponse(c, summary, err)
		return nil
	})
}

// HandleDelete DELETE /transactions/:id
func (h *FinanceHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ParseObjectID(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		basehdl.HandleResponse(c, nil, h.FinanceService.Delete(c.Context(), middleware.GetSession(c), id))
		return nil
	})
}
