// Package dto - DTOs do domain bot.
package dto

// SendMessageInput enfileira uma mensagem para um cliente da carteira.
// Sem TemplateKey a chave usada é o status de vencimento atual do cliente;
// Text preenchido ignora o template e envia o texto como está.
type SendMessageInput struct {
	ClientID    string `json:"clientId" validate:"required"`
	TemplateKey string `json:"templateKey" validate:"omitempty,template_key"`
	Text        string `json:"text" validate:"omitempty,max=4096"`
}

// BulkSendInput enfileira a mesma chave de template para vários clientes
type BulkSendInput struct {
	ClientIDs   []string `json:"clientIds" validate:"required,min=1,dive,required"`
	TemplateKey string   `json:"templateKey" validate:"omitempty,template_key"`
}

// RelayStatusInput é o reporte de estado vindo do relay externo
type RelayStatusInput struct {
	OwnerId string `json:"ownerId" validate:"required,email"`
	Status  string `json:"status" validate:"required"`
	QrCode  string `json:"qrCode"`
}
