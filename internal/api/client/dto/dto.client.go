// Package dto - DTOs do domain client.
package dto

// ClientCreateInput é o payload de cadastro de cliente.
// DueDate aceita dd/mm/aaaa ou aaaa-mm-dd; o service faz o parse tolerante.
type ClientCreateInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Whatsapp    string  `json:"whatsapp" validate:"omitempty,whatsapp"`
	DueDate     string  `json:"dueDate" validate:"omitempty"`
	Value       float64 `json:"value" validate:"gte=0"`
	Username    string  `json:"username" validate:"omitempty,max=120"`
	Observation string  `json:"observation" validate:"omitempty,max=1000"`
}

// ClientUpdateInput é o payload de edição; só campos presentes são alterados
type ClientUpdateInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Whatsapp    *string  `json:"whatsapp" validate:"omitempty,whatsapp"`
	DueDate     *string  `json:"dueDate"`
	Value       *float64 `json:"value" validate:"omitempty,gte=0"`
	Username    *string  `json:"username" validate:"omitempty,max=120"`
	Observation *string  `json:"observation" validate:"omitempty,max=1000"`
}

// ClientRenewInput define a extensão da renovação, padrão 30 dias
type ClientRenewInput struct {
	ExtensionDays int `json:"extensionDays" validate:"omitempty,gt=0,lte=3650"`
}

// ClientBulkDeleteInput lista os ids da exclusão em lote
type ClientBulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}
