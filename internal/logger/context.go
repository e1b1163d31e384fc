package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest devolve um entry com os campos da requisição (id, método, path, ip).
func WithRequest(c fiber.Ctx) *logrus.Entry {
	// O middleware de request id grava em Locals; o header é o fallback
	requestID := ""
	if rid, ok := c.Locals("requestid").(string); ok {
		requestID = rid
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}

	return GetAppLogger().WithFields(logrus.Fields{
		"requestId": requestID,
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
	})
}
