// Package ai - apoio de escrita de mensagens via Gemini (generateContent).
// Única chamada remota com retry automático: três tentativas com intervalo
// fixo; esgotadas, o texto de falha vai para o chamador no lugar do resultado.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atendimentojatv-stack/firetvGESTOR/config"
	"github.com/atendimentojatv-stack/firetvGESTOR/internal/common"
)

const (
	maxAttempts  = 3
	retryBackoff = time.Second
)

// FailureText é devolvido no lugar do resultado quando as tentativas esgotam
const FailureText = "Não foi possível gerar a sugestão agora. Tente novamente em instantes."

// Assistant chama a API do Gemini para sugerir/melhorar textos de mensagem
type Assistant struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	sleep      func(time.Duration)
}

// NewAssistant cria o assistente. Sem GEMINI_API_KEY o recurso fica
// desabilitado e Suggest responde com erro de negócio.
func NewAssistant(cfg *config.Configuration) *Assistant {
	return &Assistant{
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.GeminiModel,
		baseURL:    strings.TrimSuffix(cfg.GeminiURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		sleep:      time.Sleep,
	}
}

// Enabled informa se o recurso está configurado
func (a *Assistant) Enabled() bool {
	return a.apiKey != ""
}

// geminiRequest/geminiResponse espelham o mínimo do contrato generateContent
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Suggest envia o prompt e retorna o texto sugerido. Falha transitória é
// retentada até três vezes com intervalo fixo; depois disso o erro carrega
// FailureText como detalhe para exibição direta.
func (a *Assistant) Suggest(ctx context.Context, prompt string) (string, error) {
	if !a.Enabled() {
		return "", common.NewError(common.ErrCodeBusinessState, "Assistente de IA não configurado", common.StatusConflict, nil)
	}
	if strings.TrimSpace(prompt) == "" {
		return "", common.ErrInvalidInput
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := a.call(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt < maxAttempts {
			a.sleep(retryBackoff)
		}
	}
	return "", common.NewError(common.ErrCodeRemoteService, FailureText, common.StatusBadGateway, lastErr.Error())
}

// call faz uma tentativa única contra o endpoint generateContent
func (a *Assistant) call(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.baseURL, a.model, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini respondeu %d: %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("resposta do gemini sem candidatos")
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
