package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atendimentojatv-stack/firetvGESTOR/config"
)

func newTestAssistant(serverURL string) *Assistant {
	a := NewAssistant(&config.Configuration{
		GeminiAPIKey: "test-key",
		GeminiModel:  "gemini-1.5-flash",
		GeminiURL:    serverURL,
	})
	a.sleep = func(time.Duration) {} // sem espera real nos testes
	return a
}

func geminiOK(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func TestSuggest_Sucesso(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-1.5-flash")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(geminiOK("Olá! Sua fatura vence amanhã.")))
	}))
	defer server.Close()

	text, err := newTestAssistant(server.URL).Suggest(context.Background(), "melhore esta mensagem")
	require.NoError(t, err)
	assert.Equal(t, "Olá! Sua fatura vence amanhã.", text)
}

func TestSuggest_RecuperaAposFalhaTransitoria(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(geminiOK("texto")))
	}))
	defer server.Close()

	text, err := newTestAssistant(server.URL).Suggest(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "texto", text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSuggest_EsgotaTentativas(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestAssistant(server.URL).Suggest(context.Background(), "prompt")
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load(), "exatamente três tentativas")
	assert.Contains(t, err.Error(), FailureText)
}

func TestSuggest_Desabilitado(t *testing.T) {
	a := NewAssistant(&config.Configuration{})
	_, err := a.Suggest(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestSuggest_PromptVazio(t *testing.T) {
	a := newTestAssistant("http://localhost:0")
	_, err := a.Suggest(context.Background(), "   ")
	assert.Error(t, err)
}
