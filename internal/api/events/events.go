// Package events fornece o mecanismo central de eventos de mudança de dados.
// Os services CRUD não precisam sobrescrever cada método — o BaseServiceMongoImpl
// emite o evento automaticamente. A lógica reativa (streams de snapshot,
// invalidação de cache) registra-se via OnDataChanged.
package events

import (
	"context"
	"sync"
)

// Tipos de operação CRUD
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// DataChangeEvent descreve uma mudança de dados.
// Document é o registro após a mudança (nil em delete).
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	Document       interface{}
}

// DataChangeHandler trata um evento de mudança de dados
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged registra um handler. Chamar durante a inicialização.
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// EmitDataChanged emite o evento para todos os handlers registrados.
// Cada handler roda em goroutine própria; panic é recuperado para não
// derrubar os demais handlers nem a request de origem.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		go func(fn DataChangeHandler) {
			defer func() {
				_ = recover()
			}()
			fn(ctx, e)
		}(h)
	}
}
