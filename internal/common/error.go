package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Sucesso
	StatusCreated   = 201 // Criado com sucesso
	StatusAccepted  = 202 // Requisição aceita
	StatusNoContent = 204 // Sucesso sem conteúdo de retorno

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Requisição inválida
	StatusUnauthorized    = 401 // Não autenticado
	StatusForbidden       = 403 // Sem permissão de acesso
	StatusNotFound        = 404 // Recurso não encontrado
	StatusConflict        = 409 // Conflito de dados
	StatusTooManyRequests = 429 // Requisições em excesso

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Erro interno do servidor
	StatusBadGateway          = 502 // Erro em serviço externo
	StatusServiceUnavailable  = 503 // Serviço indisponível
)

// Response Messages
const (
	MsgSuccess = "Operação realizada com sucesso"
	MsgCreated = "Criado com sucesso"

	MsgBadRequest         = "Requisição inválida"
	MsgUnauthorized       = "Faça login para continuar"
	MsgForbidden          = "Você não tem permissão para esta ação"
	MsgNotFound           = "Recurso não encontrado"
	MsgConflict           = "Conflito de dados"
	MsgTooManyRequests    = "Muitas requisições, tente novamente em instantes"
	MsgInternalError      = "Erro interno do sistema"
	MsgServiceUnavailable = "Serviço indisponível"

	MsgTokenMissing = "Token de autenticação ausente"
	MsgTokenInvalid = "Token inválido"
	MsgTokenExpired = "Sessão expirada"

	MsgValidationError = "Dados inválidos"
	MsgDatabaseError   = "Erro ao acessar o banco de dados"
)

// ErrorCode define um código de erro detalhado
type ErrorCode struct {
	Code        string // Código do erro (ex: AUTH_001)
	Category    string // Categoria do erro (ex: Authentication)
	SubCategory string // Subcategoria (ex: Token)
	Description string // Descrição detalhada
}

// Catálogo de códigos de erro por família
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Erro interno do sistema",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Erro geral de autenticação",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Erro relacionado ao token de sessão",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Erro de credenciais de acesso",
	}

	ErrCodeAuthPermission = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Permission",
		Description: "Ação não permitida para o papel do usuário",
	}

	ErrCodeAuthVerification = ErrorCode{
		Code:        "AUTH_004",
		Category:    "Authentication",
		SubCategory: "Verification",
		Description: "E-mail ainda não verificado",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Erro geral de validação de dados",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Dados de entrada inválidos",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Formato de dados inválido",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Erro geral de banco de dados",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Erro de conexão com o banco de dados",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Erro de consulta ao banco de dados",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Erro geral de regra de negócio",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Estado inválido para a operação",
	}

	ErrCodeBusinessChannel = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Channel",
		Description: "Canal de mensagens indisponível",
	}

	// Remote Service Errors (SVC_xxx)
	ErrCodeRemoteService = ErrorCode{
		Code:        "SVC_001",
		Category:    "Service",
		SubCategory: "Remote",
		Description: "Falha em serviço externo",
	}
)

// Error define a estrutura de erro detalhada do sistema
type Error struct {
	Code       ErrorCode // Código de erro detalhado
	Message    string    // Mensagem para o usuário
	StatusCode int       // HTTP status code
	Details    any       // Informações adicionais sobre o erro
}

// Error retorna a mensagem do erro
func (e *Error) Error() string {
	return e.Message
}

// Is compara pelo código de erro e mensagem (suporte a errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return target.Error() == e.Message
}

// NewError cria um erro com todas as informações
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Erros pré-definidos
var (
	// Authentication
	// Mensagem genérica de credenciais: não revela qual dos campos está errado.
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Credenciais inválidas.", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrEmailNotVerified   = NewError(ErrCodeAuthVerification, "Verifique seu e-mail antes de entrar.", StatusForbidden, nil)
	ErrPermissionDenied   = NewError(ErrCodeAuthPermission, MsgForbidden, StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "Usuário não encontrado", StatusNotFound, nil)
	ErrPanelExpired       = NewError(ErrCodeAuthPermission, "Seu acesso expirou. Fale com seu fornecedor para renovar.", StatusForbidden, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dados de entrada inválidos", StatusBadRequest, nil)
	ErrInvalidEmail  = NewError(ErrCodeValidationInput, "E-mail em formato inválido", StatusBadRequest, nil)
	ErrWeakPassword  = NewError(ErrCodeValidationInput, "A senha deve ter pelo menos 6 caracteres", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Formato de dados inválido", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Campo obrigatório ausente", StatusBadRequest, nil)

	// Database
	ErrNotFound    = NewError(ErrCodeDatabaseQuery, "Registro não encontrado", StatusNotFound, nil)
	ErrDuplicate   = NewError(ErrCodeDatabaseQuery, "Registro já existente", StatusConflict, nil)
	ErrConnection  = NewError(ErrCodeDatabaseConnection, "Erro de conexão com o banco de dados", StatusServiceUnavailable, nil)
	ErrTransaction = NewError(ErrCodeDatabaseQuery, "Erro ao gravar lote de operações", StatusInternalServerError, nil)

	// Business
	ErrInvalidState       = NewError(ErrCodeBusinessState, "Estado inválido para esta operação", StatusBadRequest, nil)
	ErrChannelUnavailable = NewError(ErrCodeBusinessChannel, "Bot não conectado. Conecte o WhatsApp antes de enviar mensagens.", StatusConflict, nil)

	// Remote
	ErrRemoteFailure = NewError(ErrCodeRemoteService, "Falha de comunicação com serviço externo", StatusServiceUnavailable, nil)
)

// Mongo errors específicos
var (
	ErrMongoDuplicate = NewError(ErrCodeDatabaseQuery, "Registro duplicado no banco de dados", StatusConflict, nil)
	ErrMongoNetwork   = NewError(ErrCodeDatabaseConnection, "Falha de rede ao acessar o MongoDB", StatusServiceUnavailable, nil)
	ErrMongoTimeout   = NewError(ErrCodeDatabaseConnection, "Tempo esgotado ao acessar o MongoDB", StatusServiceUnavailable, nil)
	ErrMongoWrite     = NewError(ErrCodeDatabaseQuery, "Erro de escrita no MongoDB", StatusInternalServerError, nil)
)

// ConvertMongoError converte erros do driver MongoDB para erros do sistema.
// ErrNotFound passa intacto para que errors.Is continue funcionando nos services.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return ErrMongoWrite
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
