package botsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	botmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/bot/models"
)

func TestValidateRequest_Conectar(t *testing.T) {
	// Só a partir de desconectado, sem pedido de start pendente
	assert.NoError(t, ValidateRequest(botmodels.StatusDisconnected, botmodels.ActionIdle, botmodels.ActionStart))

	assert.Error(t, ValidateRequest(botmodels.StatusConnected, botmodels.ActionIdle, botmodels.ActionStart))
	assert.Error(t, ValidateRequest(botmodels.StatusInitializing, botmodels.ActionStart, botmodels.ActionStart))
	assert.Error(t, ValidateRequest(botmodels.StatusDisconnecting, botmodels.ActionIdle, botmodels.ActionStart))
	assert.Error(t, ValidateRequest(botmodels.StatusDisconnected, botmodels.ActionStart, botmodels.ActionStart))
}

func TestValidateRequest_Cancelar(t *testing.T) {
	// Vale durante a negociação: status initializing ou start ainda pendente
	assert.NoError(t, ValidateRequest(botmodels.StatusInitializing, botmodels.ActionStart, botmodels.ActionIdle))
	assert.NoError(t, ValidateRequest(botmodels.StatusDisconnected, botmodels.ActionStart, botmodels.ActionIdle))

	assert.Error(t, ValidateRequest(botmodels.StatusConnected, botmodels.ActionIdle, botmodels.ActionIdle))
	assert.Error(t, ValidateRequest(botmodels.StatusDisconnected, botmodels.ActionIdle, botmodels.ActionIdle))
}

func TestValidateRequest_Desconectar(t *testing.T) {
	assert.NoError(t, ValidateRequest(botmodels.StatusConnected, botmodels.ActionIdle, botmodels.ActionLogout))

	assert.Error(t, ValidateRequest(botmodels.StatusDisconnected, botmodels.ActionIdle, botmodels.ActionLogout))
	assert.Error(t, ValidateRequest(botmodels.StatusInitializing, botmodels.ActionStart, botmodels.ActionLogout))
	assert.Error(t, ValidateRequest(botmodels.StatusDisconnecting, botmodels.ActionLogout, botmodels.ActionLogout))
}

func TestValidateRequest_ForceLogoutValeDeQualquerEstado(t *testing.T) {
	statuses := []string{
		botmodels.StatusDisconnected,
		botmodels.StatusInitializing,
		botmodels.StatusConnected,
		botmodels.StatusDisconnecting,
	}
	for _, status := range statuses {
		assert.NoError(t, ValidateRequest(status, botmodels.ActionIdle, botmodels.ActionForceLogout), "status=%s", status)
	}
}

func TestValidateRequest_AcaoDesconhecida(t *testing.T) {
	assert.Error(t, ValidateRequest(botmodels.StatusConnected, botmodels.ActionIdle, "reboot"))
}
