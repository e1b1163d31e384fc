// Package authsvc - contas: cadastro, login, verificação de e-mail, senha.
//
// Falhas de autenticação são sempre normalizadas para "Credenciais inválidas",
// sem revelar se o e-mail existe ou se a senha está errada.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/dto"
	authmodels "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/auth/models"
	basesvc "github.com/atendimentojatv-stack/firetvGESTOR/internal/api/base/service"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/lifecycle"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/api/template"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/global"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/logger"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/mailer"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/utility"
)

// resetTokenTTL é a validade do link de redefinição de senha
const resetTokenTTL = time.Hour

// UserService trata conta própria e autenticação
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
	mailer *mailer.Mailer
}

// NewUserService cria o UserService a partir da collection registrada
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("collection %s não registrada: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](coll),
		mailer:               mailer.NewMailer(global.MongoDB_ServerConfig),
	}, nil
}

// SignUp cria a conta no primeiro acesso: revendedor auto-provisionado com
// 7 dias de teste, sem criador humano (parentId system), nome tirado do
// e-mail. O acesso só libera depois da confirmação do e-mail.
func (s *UserService) SignUp(ctx context.Context, input *authdto.SignUpInput) (*authmodels.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	expiration := lifecycle.Renew(nil, lifecycle.TrialDays, time.Now())
	doc := authmodels.User{
		Uid:               uuid.NewString(),
		Email:             email,
		Role:              authmodels.RoleReseller,
		ParentId:          authmodels.ParentSystem,
		Name:              strings.SplitN(email, "@", 2)[0],
		Status:            authmodels.StatusActive,
		Plan:              authmodels.PlanTrial,
		PanelExpiration:   &expiration,
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

	// Falha de SMTP não desfaz o cadastro; o reenvio resolve
	if err := s.mailer.SendVerificationEmail(created.Email, created.Name, created.VerificationToken); err != nil {
		logger.GetErrorLogger().WithField("email", created.Email).WithError(err).Error("falha ao enviar e-mail de verificação")
	}
	return &created, nil
}

// SignIn autentica e retorna o usuário com o token de sessão.
// Recusa contas sem e-mail confirmado, exceto o e-mail reservado do CEO;
// recusa painel vencido para qualquer plano que não seja unlimited.
func (s *UserService) SignIn(ctx context.Context, input *authdto.SignInInput) (*authmodels.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, "", common.ErrInvalidCredentials
	}
	if user.Status == authmodels.StatusDeleted {
		return nil, "", common.ErrInvalidCredentials
	}
	if !utility.CheckPassword(user.Password, input.Password) {
		return nil, "", common.ErrInvalidCredentials
	}

	if !user.EmailVerified && user.Email != global.MongoDB_ServerConfig.CEOEmail {
		return nil, "", common.ErrEmailNotVerified
	}

	if !user.IsCEO() && user.Plan != authmodels.PlanUnlimited {
		if user.PanelExpiration == nil || user.PanelExpiration.Before(time.Now()) {
			return nil, "", common.ErrPanelExpired
		}
	}

	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	}).Info("login efetuado")
	return &user, token, nil
}

// VerifyEmail confirma o e-mail a partir do token enviado na criação da conta
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	update := basesvc.UpdateData{
		Set:   bson.M{"emailVerified": true},
		Unset: bson.M{"verificationToken": ""},
	}
	_, err := s.UpdateOne(ctx, bson.M{"verificationToken": token}, update)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrCodeAuthVerification, "Link de verificação inválido ou já utilizado", common.StatusBadRequest, nil)
		}
		return err
	}
	return nil
}

// ResendVerification gera um token novo e reenvia o e-mail de confirmação.
// Resposta idêntica com conta inexistente ou já verificada, sem vazar estado.
func (s *UserService) ResendVerification(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.FindOne(ctx, bson.M{"email": email, "status": authmodels.StatusActive}, nil)
	if err != nil || user.EmailVerified {
		return nil
	}

	token := uuid.NewString()
	if _, err := s.UpdateById(ctx, user.ID, basesvc.UpdateData{Set: bson.M{"verificationToken": token}}); err != nil {
		return err
	}
	return s.mailer.SendVerificationEmail(user.Email, user.Name, token)
}

// RequestPasswordReset envia o link de redefinição. Conta inexistente recebe
// a mesma resposta de sucesso, sem vazar quais e-mails estão cadastrados.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.FindOne(ctx, bson.M{"email": email, "status": authmodels.StatusActive}, nil)
	if err != nil {
		return nil
	}

	token := uuid.NewString()
	update := basesvc.UpdateData{Set: bson.M{
		"resetToken":       token,
		"resetTokenExpiry": time.Now().Add(resetTokenTTL).UnixMilli(),
	}}
	if _, err := s.UpdateById(ctx, user.ID, update); err != nil {
		return err
	}
	return s.mailer.SendPasswordReset(user.Email, user.Name, token)
}

// ResetPassword troca a senha a partir do token do link, se ainda válido
func (s *UserService) ResetPassword(ctx context.Context, input *authdto.PasswordResetInput) error {
	user, err := s.FindOne(ctx, bson.M{"resetToken": input.Token}, nil)
	if err != nil || user.ResetTokenExpiry < time.Now().UnixMilli() {
		return common.NewError(common.ErrCodeAuthVerification, "Link de redefinição inválido ou expirado", common.StatusBadRequest, nil)
	}

	hash, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	update := basesvc.UpdateData{
		Set:   bson.M{"password": hash},
		Unset: bson.M{"resetToken": "", "resetTokenExpiry": ""},
	}
	_, err = s.UpdateById(ctx, user.ID, update)
	return err
}

// Reauthenticate confirma a senha atual da sessão (exigido antes de
// operações sensíveis como troca de e-mail/senha)
func (s *UserService) Reauthenticate(ctx context.Context, sess *authmodels.Session, password string) error {
	user, err := s.FindOneById(ctx, sess.UserID)
	if err != nil {
		return common.ErrInvalidCredentials
	}
	if !utility.CheckPassword(user.Password, password) {
		return common.ErrInvalidCredentials
	}
	return nil
}

// UpdateEmail troca o e-mail da conta. O e-mail novo volta para o estado não
// verificado e recebe um novo link de confirmação.
func (s *UserService) UpdateEmail(ctx context.Context, sess *authmodels.Session, input *authdto.UpdateEmailInput) error {
	if err := s.Reauthenticate(ctx, sess, input.Password); err != nil {
		return err
	}

	newEmail := strings.ToLower(strings.TrimSpace(input.NewEmail))
	token := uuid.NewString()
	update := basesvc.UpdateData{Set: bson.M{
		"email":             newEmail,
		"emailVerified":     false,
		"verificationToken": token,
	}}
	user, err := s.UpdateById(ctx, sess.UserID, update)
	if err != nil {
		return err
	}
	return s.mailer.SendVerificationEmail(newEmail, user.Name, token)
}

// UpdatePassword troca a senha da conta autenticada
func (s *UserService) UpdatePassword(ctx context.Context, sess *authmodels.Session, input *authdto.UpdatePasswordInput) error {
	if err := s.Reauthenticate(ctx, sess, input.CurrentPassword); err != nil {
		return err
	}

	hash, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	_, err = s.UpdateById(ctx, sess.UserID, basesvc.UpdateData{Set: bson.M{"password": hash}})
	return err
}

// UpdateProfile edita nome e nome da empresa da própria conta
func (s *UserService) UpdateProfile(ctx context.Context, sess *authmodels.Session, input *authdto.ProfileUpdateInput) (*authmodels.User, error) {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.CompanyName != nil {
		set["companyName"] = *input.CompanyName
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.UpdateById(ctx, sess.UserID, basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateTemplates grava os templates de mensagem customizados do dono.
// Chave desconhecida é erro; texto vazio remove o custom daquela chave
// (volta a valer o padrão embutido).
func (s *UserService) UpdateTemplates(ctx context.Context, sess *authmodels.Session, templates map[string]string) (*authmodels.User, error) {
	if err := Can(sess, VerbEdit, ResourceTemplate, nil); err != nil {
		return nil, err
	}

	set := bson.M{}
	unset := bson.M{}
	for key, text := range templates {
		if !template.IsValidKey(key) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Chave de template desconhecida: "+key, common.StatusBadRequest, nil)
		}
		field := "messageTemplates." + key
		if strings.TrimSpace(text) == "" {
			unset[field] = ""
		} else {
			set[field] = text
		}
	}

	updated, err := s.UpdateById(ctx, sess.UserID, basesvc.UpdateData{Set: set, Unset: unset})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
