// Package authsvc - gestão da equipe: roster, convite, renovação e exclusão.
package authsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atendimentojatv-stack/firetvGESTOR/config"
	authdto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/dto"
	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	basesvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/lifecycle"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/logger"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/utility"
)

// rosterFilter monta o filtro de visibilidade da equipe: CEO enxerga o roster
// inteiro (menos a própria conta de bootstrap); master/revendedor enxergam
// apenas os filhos diretos. Contas excluídas ficam fora de todas as listagens.
func rosterFilter(sess *authmodels.Session) bson.M {
	filter := bson.M{"status": bson.M{"$ne": authmodels.StatusDeleted}}
	if sess.IsCEO() {
		filter["role"] = bson.M{"$ne": authmodels.RoleCEO}
		return filter
	}
	filter["parentId"] = sess.Email
	return filter
}

// Roster lista os membros visíveis para a sessão, mais recentes primeiro
func (s *UserService) Roster(ctx context.Context, sess *authmodels.Session) ([]authmodels.User, error) {
	if err := Can(sess, VerbView, ResourceMember, nil); err != nil {
		return nil, err
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, rosterFilter(sess), opts)
}

// SubscribeRoster abre uma assinatura de snapshot do roster visível à sessão
func (s *UserService) SubscribeRoster(sess *authmodels.Session) (*basesvc.SnapshotStream[authmodels.User], error) {
	if err := Can(sess, VerbView, ResourceMember, nil); err != nil {
		return nil, err
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return basesvc.NewSnapshotStream[authmodels.User](s.BaseServiceMongoImpl, rosterFilter(sess), opts), nil
}

// Invite cria um membro por convite do master/CEO: 30 dias de teste,
// parentId apontando para o criador, e-mail pendente de confirmação.
func (s *UserService) Invite(ctx context.Context, sess *authmodels.Session, input *authdto.MemberInviteInput) (*authmodels.User, error) {
	if err := Can(sess, VerbCreate, ResourceMember, nil); err != nil {
		return nil, err
	}
	if err := CanAssignRole(sess, input.Role); err != nil {
		return nil, err
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	expiration := lifecycle.Renew(nil, lifecycle.InviteTrialDays, time.Now())
	doc := authmodels.User{
		Uid:               uuid.NewString(),
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		Role:              input.Role,
		ParentId:          sess.Email,
		Name:              input.Name,
		Status:            authmodels.StatusActive,
		Plan:              authmodels.PlanTrial,
		PanelExpiration:   &expiration,
		CompanyName:       input.CompanyName,
		Password:          hash,
		EmailVerified:     false,
		VerificationToken: uuid.NewString(),
	}

	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeValidationInput, "E-mail já cadastrado", common.StatusConflict, nil)
		}
		return nil, err
	}

	if err := s.mailer.SendVerificationEmail(created.Email, created.Name, created.VerificationToken); err != nil {
		logger.GetErrorLogger().WithField("email", created.Email).WithError(err).Error("falha ao enviar e-mail de verificação do convite")
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"createdBy": sess.Email,
		"member":    created.Email,
		"role":      created.Role,
	}).Info("membro convidado")
	return &created, nil
}

// UpdateMember edita um membro alcançável pela sessão. Mudança de papel passa
// pela mesma regra de atribuição do convite.
func (s *UserService) UpdateMember(ctx context.Context, sess *authmodels.Session, id primitive.ObjectID, input *authdto.MemberUpdateInput) (*authmodels.User, error) {
	target, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Can(sess, VerbEdit, ResourceMember, &target); err != nil {
		return nil, err
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.CompanyName != nil {
		set["companyName"] = *input.CompanyName
	}
	if input.Role != nil && *input.Role != target.Role {
		if err := CanAssignRole(sess, *input.Role); err != nil {
			return nil, err
		}
		set["role"] = *input.Role
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.UpdateById(ctx, id, basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RenewMember estende o acesso do membro ao painel. A expiração de membro tem
// precisão completa de data/hora e nunca gera transação de receita.
func (s *UserService) RenewMember(ctx context.Context, sess *authmodels.Session, id primitive.ObjectID, extensionDays int) (*authmodels.User, error) {
	target, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Can(sess, VerbRenew, ResourceMember, &target); err != nil {
		return nil, err
	}
	if extensionDays <= 0 {
		extensionDays = lifecycle.DefaultExtensionDays
	}

	newExpiration := lifecycle.Renew(target.PanelExpiration, extensionDays, time.Now())
	update := basesvc.UpdateData{Set: bson.M{
		"panelExpiration": newExpiration,
		"plan":            authmodels.PlanRenewed,
	}}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"renewedBy": sess.Email,
		"member":    updated.Email,
		"until":     newExpiration,
	}).Info("painel de membro renovado")
	return &updated, nil
}

// DeleteMember marca o membro como excluído. O registro permanece no banco
// para auditoria; transações antigas continuam íntegras porque guardam
// snapshot, não referência viva.
func (s *UserService) DeleteMember(ctx context.Context, sess *authmodels.Session, id primitive.ObjectID) error {
	target, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := Can(sess, VerbDelete, ResourceMember, &target); err != nil {
		return err
	}

	_, err = s.UpdateById(ctx, id, basesvc.UpdateData{Set: bson.M{"status": authmodels.StatusDeleted}})
	return err
}

// EnsureBootstrapCEO garante a conta CEO no primeiro boot. Idempotente:
// execuções seguintes não alteram a conta existente.
func (s *UserService) EnsureBootstrapCEO(ctx context.Context, cfg *config.Configuration) error {
	password := cfg.CEOInitPwd
	if password == "" {
		// Sem senha configurada a conta nasce inacessível até um reset manual
		password = uuid.NewString()
	}
	hash, err := utility.HashPassword(password)
	if err != nil {
		return err
	}

	expiration := lifecycle.Renew(nil, lifecycle.BootstrapDays, time.Now())
	update := basesvc.UpdateData{
		SetOnInsert: bson.M{
			"uid":             uuid.NewString(),
			"role":            authmodels.RoleCEO,
			"parentId":        authmodels.ParentSystem,
			"name":            cfg.CEOName,
			"status":          authmodels.StatusActive,
			"plan":            authmodels.PlanUnlimited,
			"panelExpiration": expiration,
			"companyName":     cfg.CompanyName,
			"password":        hash,
			"emailVerified":   true,
		},
	}
	_, err = s.Upsert(ctx, bson.M{"email": strings.ToLower(cfg.CEOEmail)}, update)
	return err
}
