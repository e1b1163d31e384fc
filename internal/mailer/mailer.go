// Package mailer - envio de e-mails transacionais (verificação e reset de
// senha) via SMTP. Sem SMTP configurado o envio vira no-op com aviso no log,
// para não travar ambiente de desenvolvimento.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/atendimentojatv-stack/firetvGESTOR/config"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/logger"
)

// Mailer envia e-mails transacionais da aplicação
type Mailer struct {
	cfg *config.Configuration
}

// NewMailer cria o Mailer com a configuração SMTP do servidor
func NewMailer(cfg *config.Configuration) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	if m.cfg.SMTPHost == "" {
		logger.GetAppLogger().WithField("to", to).Warn("SMTP não configurado, e-mail não enviado: " + subject)
		return nil
	}

	msg := gomail.NewMessage()
	from := m.cfg.SMTPFrom
	if from == "" {
		from = m.cfg.SMTPUser
	}
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return common.NewError(common.ErrCodeRemoteService, "Falha no envio do e-mail", common.StatusBadGateway, err.Error())
	}
	return nil
}

// SendVerificationEmail envia o link de confirmação de e-mail da conta nova
func (m *Mailer) SendVerificationEmail(to, name, token string) error {
	link := fmt.Sprintf("%s/verificar-email?token=%s", m.cfg.FrontendURL, token)
	body := fmt.Sprintf(`
		<p>Olá, %s!</p>
		<p>Bem-vindo ao %s. Confirme seu e-mail para liberar o acesso ao painel:</p>
		<p><a href="%s">Confirmar e-mail</a></p>
		<p>Se você não criou esta conta, ignore esta mensagem.</p>`,
		name, m.cfg.CompanyName, link)
	return m.send(to, "Confirme seu e-mail - "+m.cfg.CompanyName, body)
}

// SendPasswordReset envia o link de redefinição de senha
func (m *Mailer) SendPasswordReset(to, name, token string) error {
	link := fmt.Sprintf("%s/redefinir-senha?token=%s", m.cfg.FrontendURL, token)
	body := fmt.Sprintf(`
		<p>Olá, %s!</p>
		<p>Recebemos um pedido de redefinição de senha da sua conta. O link vale por 1 hora:</p>
		<p><a href="%s">Redefinir senha</a></p>
		<p>Se não foi você, nenhuma ação é necessária.</p>`,
		name, link)
	return m.send(to, "Redefinição de senha - "+m.cfg.CompanyName, body)
}
