// Package authsvc - serviços do domain auth: permissão, contas e equipe.
//
// A tabela de permissões deste arquivo é o ponto único de decisão de acesso.
// Nenhum handler ou service reimplementa regra de papel por conta própria:
// toda operação de escrita consulta Can antes de tocar o banco.
package authsvc

import (
	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
)

// Verb é a ação solicitada sobre um recurso
type Verb string

const (
	VerbView   Verb = "view"
	VerbCreate Verb = "create"
	VerbEdit   Verb = "edit"
	VerbDelete Verb = "delete"
	VerbRenew  Verb = "renew"
)

// Resource é o tipo de entidade alvo da ação
type Resource string

const (
	ResourceMember      Resource = "member"
	ResourceClient      Resource = "client"
	ResourceTransaction Resource = "transaction"
	ResourceBot         Resource = "bot"
	ResourceTemplate    Resource = "template"
)

// permissionTable é a tabela plana papel → recurso → verbos permitidos.
// Clientes, transações, bot e templates são sempre escopados ao próprio dono
// (createdBy/ownerId) na camada de service; a tabela decide apenas se o papel
// pode executar o verbo. Transações não têm create: nascem como efeito
// colateral de cadastro/renovação de cliente, nunca por ação direta.
var permissionTable = map[string]map[Resource]map[Verb]bool{
	authmodels.RoleCEO: {
		ResourceMember:      {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true, VerbRenew: true},
		ResourceClient:      {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true, VerbRenew: true},
		ResourceTransaction: {VerbView: true, VerbDelete: true},
		ResourceBot:         {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true},
		ResourceTemplate:    {VerbView: true, VerbEdit: true},
	},
	authmodels.RoleMaster: {
		ResourceMember:      {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true, VerbRenew: true},
		ResourceClient:      {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true, VerbRenew: true},
		ResourceTransaction: {VerbView: true, VerbDelete: true},
		ResourceBot:         {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true},
		ResourceTemplate:    {VerbView: true, VerbEdit: true},
	},
	authmodels.RoleReseller: {
		ResourceMember:      {}, // revendedor nunca cria/edita/exclui membros
		ResourceClient:      {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true, VerbRenew: true},
		ResourceTransaction: {VerbView: true, VerbDelete: true},
		ResourceBot:         {VerbView: true, VerbCreate: true, VerbEdit: true, VerbDelete: true},
		ResourceTemplate:    {VerbView: true, VerbEdit: true},
	},
}

// assignableRoles restringe quais papéis cada papel pode atribuir ao criar ou
// editar um membro. Master só atribui reseller; o papel ceo nunca é atribuível.
var assignableRoles = map[string]map[string]bool{
	authmodels.RoleCEO:    {authmodels.RoleMaster: true, authmodels.RoleReseller: true},
	authmodels.RoleMaster: {authmodels.RoleReseller: true},
}

// Can decide se a sessão pode executar o verbo sobre o recurso.
// Para ResourceMember com alvo conhecido, aplica também a regra de hierarquia:
// CEO alcança qualquer membro; master alcança apenas filhos diretos
// (ParentId igual ao próprio e-mail). Retorna ErrPermissionDenied na recusa.
func Can(actor *authmodels.Session, verb Verb, resource Resource, target *authmodels.User) error {
	if actor == nil {
		return common.ErrPermissionDenied
	}

	verbs, ok := permissionTable[actor.Role][resource]
	if !ok || !verbs[verb] {
		return common.ErrPermissionDenied
	}

	if resource == ResourceMember && target != nil && !actor.IsCEO() {
		if target.ParentId != actor.Email {
			return common.ErrPermissionDenied
		}
		// Master não alcança outra conta master nem a conta CEO
		if target.Role != authmodels.RoleReseller {
			return common.ErrPermissionDenied
		}
	}
	return nil
}

// CanAssignRole decide se a sessão pode atribuir o papel informado a um membro
func CanAssignRole(actor *authmodels.Session, role string) error {
	if actor == nil || !assignableRoles[actor.Role][role] {
		return common.ErrPermissionDenied
	}
	return nil
}
