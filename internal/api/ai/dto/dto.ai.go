// Package dto - DTOs do assistente de escrita.
package dto

// SuggestInput pede uma sugestão/melhoria de texto de mensagem
type SuggestInput struct {
	Prompt string `json:"prompt" validate:"required,min=3,max=4000"`
}
