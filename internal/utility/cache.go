package utility

import (
	"sync"
	"time"
)

// Cache é um cache em memória com limpeza periódica completa.
// Usado para cachear resultados de permissão no middleware de auth.
type Cache struct {
	items    map[string]interface{}
	mu       sync.RWMutex
	cleanup  time.Duration
	stopChan chan struct{}
}

// NewCache cria um cache novo. ttl é mantido por compatibilidade de assinatura;
// a expiração efetiva acontece na varredura completa a cada cleanup.
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]interface{}),
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set grava um valor no cache
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Get busca um valor no cache
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, exists := c.items[key]
	return value, exists
}

// Delete remove uma chave do cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// cleanupLoop esvazia o cache periodicamente
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.items = make(map[string]interface{})
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}

// Stop encerra a goroutine de limpeza
func (c *Cache) Stop() {
	close(c.stopChan)
}
