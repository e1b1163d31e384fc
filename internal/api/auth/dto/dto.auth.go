// Package dto - DTOs do domain auth (conta própria e equipe).
package dto

// SignUpInput é o payload de criação de conta no primeiro acesso
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// SignInInput é o payload de login
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailInput confirma o e-mail a partir do token enviado por e-mail
type VerifyEmailInput struct {
	Token string `json:"token" validate:"required"`
}

// ResendVerificationInput reenvia o e-mail de confirmação
type ResendVerificationInput struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetRequestInput solicita o link de redefinição de senha
type PasswordResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetInput redefine a senha a partir do token do link
type PasswordResetInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateEmailInput troca o e-mail da conta; exige a senha atual
type UpdateEmailInput struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordInput troca a senha da conta; exige a senha atual
type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
}

// ProfileUpdateInput edita os dados de exibição da própria conta
type ProfileUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	CompanyName *string `json:"companyName" validate:"omitempty,max=120"`
}

// TemplatesUpdateInput grava os templates de mensagem customizados do dono.
// As chaves são validadas contra o conjunto conhecido no service.
type TemplatesUpdateInput struct {
	Templates map[string]string `json:"templates" validate:"required"`
}

// MemberInviteInput cria um membro da equipe por convite
type MemberInviteInput struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Password    string `json:"password" validate:"required,strong_password"`
	Role        string `json:"role" validate:"required,member_role"`
	CompanyName string `json:"companyName" validate:"omitempty,max=120"`
}

// MemberUpdateInput edita um membro da equipe
type MemberUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Role        *string `json:"role" validate:"omitempty,member_role"`
	CompanyName *string `json:"companyName" validate:"omitempty,max=120"`
}

// MemberRenewInput renova o acesso ao painel de um membro
type MemberRenewInput struct {
	ExtensionDays int `json:"extensionDays" validate:"omitempty,gt=0,lte=3650"`
}
