// Package models contém os tipos compartilhados da camada base (paginação, contagem).
package models

// PaginateResult representa o resultado de uma consulta paginada
type PaginateResult[T any] struct {
	// Página atual
	Page int64 `json:"page" bson:"page"`
	// Quantidade de itens por página
	Limit int64 `json:"limit" bson:"limit"`
	// Quantidade de itens na página atual
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Itens da página
	Items []T `json:"items" bson:"items"`
	// Total de itens
	Total int64 `json:"total" bson:"total"`
	// Total de páginas
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
