package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook grava entries de log em uma goroutine própria para que escrita em
// arquivo lenta nunca bloqueie o caminho da request. Entries são bufferizadas
// em um channel; quando o buffer enche, a entry é descartada (log é best-effort).
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHook cria o hook assíncrono com os writers informados
func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}
	hook.wg.Add(1)
	go hook.processEntries()
	return hook
}

// Levels retorna os níveis tratados pelo hook
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire enfileira a entry sem bloquear
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return nil
	}

	// Copia a entry: o logrus reutiliza o objeto após o Fire retornar.
	dup := entry.Dup()
	dup.Level = entry.Level
	dup.Message = entry.Message

	select {
	case h.entries <- dup:
	default:
		// Buffer cheio: descarta em vez de bloquear a request.
	}
	return nil
}

// processEntries consome o channel e grava em todos os writers
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()
	for entry := range h.entries {
		line, err := entry.Logger.Formatter.Format(entry)
		if err != nil {
			continue
		}
		for _, w := range h.writers {
			_, _ = w.Write(line)
		}
	}
}

// Close encerra o hook e aguarda a drenagem do buffer
func (h *AsyncHook) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
}
