package authsvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
)

func sessionWithRole(role, email string) *authmodels.Session {
	return &authmodels.Session{Email: email, Role: role}
}

func TestCan_RevendedorNuncaMexeEmMembros(t *testing.T) {
	actor := sessionWithRole(authmodels.RoleReseller, "rev@ex.com")
	target := &authmodels.User{Email: "novo@ex.com", Role: authmodels.RoleReseller, ParentId: "rev@ex.com"}

	for _, verb := range []Verb{VerbView, VerbCreate, VerbEdit, VerbDelete, VerbRenew} {
		err := Can(actor, verb, ResourceMember, target)
		assert.Error(t, err, "verb=%s", verb)

		var customErr *common.Error
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, common.ErrCodeAuthPermission.Code, customErr.Code.Code)
	}
}

func TestCan_RevendedorGerenciaOsPropriosClientes(t *testing.T) {
	actor := sessionWithRole(authmodels.RoleReseller, "rev@ex.com")
	for _, verb := range []Verb{VerbCreate, VerbEdit, VerbDelete, VerbRenew} {
		assert.NoError(t, Can(actor, verb, ResourceClient, nil), "verb=%s", verb)
	}
}

func TestCan_MasterAlcancaApenasFilhosDiretos(t *testing.T) {
	actor := sessionWithRole(authmodels.RoleMaster, "master@ex.com")

	filho := &authmodels.User{Role: authmodels.RoleReseller, ParentId: "master@ex.com"}
	assert.NoError(t, Can(actor, VerbEdit, ResourceMember, filho))
	assert.NoError(t, Can(actor, VerbDelete, ResourceMember, filho))

	deOutro := &authmodels.User{Role: authmodels.RoleReseller, ParentId: "outro@ex.com"}
	assert.Error(t, Can(actor, VerbEdit, ResourceMember, deOutro))

	outroMaster := &authmodels.User{Role: authmodels.RoleMaster, ParentId: "master@ex.com"}
	assert.Error(t, Can(actor, VerbEdit, ResourceMember, outroMaster))
}

func TestCan_CEOAlcancaQualquerMembro(t *testing.T) {
	actor := sessionWithRole(authmodels.RoleCEO, "admin@firetv.com")

	alvos := []*authmodels.User{
		{Role: authmodels.RoleMaster, ParentId: authmodels.ParentSystem},
		{Role: authmodels.RoleReseller, ParentId: "qualquer@ex.com"},
	}
	for _, target := range alvos {
		for _, verb := range []Verb{VerbCreate, VerbEdit, VerbDelete, VerbRenew} {
			assert.NoError(t, Can(actor, verb, ResourceMember, target))
		}
	}
}

func TestCan_SessaoNula(t *testing.T) {
	assert.Error(t, Can(nil, VerbView, ResourceClient, nil))
}

func TestCan_TransacaoNaoTemCreateDireto(t *testing.T) {
	// Transações só nascem como efeito colateral; nenhum papel cria direto
	for _, role := range []string{authmodels.RoleCEO, authmodels.RoleMaster, authmodels.RoleReseller} {
		actor := sessionWithRole(role, "x@ex.com")
		assert.Error(t, Can(actor, VerbCreate, ResourceTransaction, nil), "role=%s", role)
		assert.NoError(t, Can(actor, VerbDelete, ResourceTransaction, nil), "role=%s", role)
	}
}

func TestCanAssignRole(t *testing.T) {
	ceo := sessionWithRole(authmodels.RoleCEO, "admin@firetv.com")
	master := sessionWithRole(authmodels.RoleMaster, "master@ex.com")
	reseller := sessionWithRole(authmodels.RoleReseller, "rev@ex.com")

	assert.NoError(t, CanAssignRole(ceo, authmodels.RoleMaster))
	assert.NoError(t, CanAssignRole(ceo, authmodels.RoleReseller))
	assert.Error(t, CanAssignRole(ceo, authmodels.RoleCEO), "papel ceo nunca é atribuível")

	assert.NoError(t, CanAssignRole(master, authmodels.RoleReseller))
	assert.Error(t, CanAssignRole(master, authmodels.RoleMaster))

	assert.Error(t, CanAssignRole(reseller, authmodels.RoleReseller))
	assert.Error(t, CanAssignRole(nil, authmodels.RoleReseller))
}
