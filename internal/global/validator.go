package global

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// InitValidator inicializa o validador e registra os validadores customizados
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("whatsapp", validateWhatsApp)
	_ = Validate.RegisterValidation("member_role", validateMemberRole)
	_ = Validate.RegisterValidation("template_key", validateTemplateKey)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
}

// validateWhatsApp aceita números com 10 a 15 dígitos, ignorando máscara
// ("(11) 99999-9999", "+55 11 ...", etc.). Vazio é tratado pelo required.
func validateWhatsApp(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	digits := 0
	for _, r := range value {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '+' || r == '.':
			// máscara permitida
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}

// validateMemberRole restringe o papel aos três valores do sistema
func validateMemberRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "ceo", "master", "reseller":
		return true
	}
	return false
}

// validateTemplateKey restringe a chave de template às chaves conhecidas
func validateTemplateKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expired", "today", "expiring", "active", "renewal", "team_active", "team_renewal":
		return true
	}
	return false
}

// validateStrongPassword exige mínimo de 6 caracteres com letra e número
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) < 6 {
		return false
	}
	hasLetter := strings.IndexFunc(value, unicode.IsLetter) >= 0
	hasDigit := strings.IndexFunc(value, unicode.IsDigit) >= 0
	return hasLetter && hasDigit
}
