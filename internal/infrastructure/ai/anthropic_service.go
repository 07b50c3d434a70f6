package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicExtractPrompt = `Você é um assistente especializado em notas fiscais brasileiras (NF-e, DANFE, boletos).
Devolva SOMENTE um objeto JSON válido (sem markdown, sem blocos de código) com esta estrutura exata:
{
  "supplierName": "<razão social ou nome fantasia do emitente>",
  "supplierCnpj": "<CNPJ do emitente>",
  "invoiceNumber": "<número da nota fiscal>",
  "emissionDate": "<data de emissão em yyyy-mm-dd>",
  "orderNumber": "<número do pedido de compra, se visível>",
  "value": "<valor total como decimal com ponto, ex: 1234.56>",
  "confidence": <número decimal entre 0.0 e 1.0>
}
Campos ausentes ficam como string vazia. Nenhum texto fora do JSON.`
)

// AnthropicService adaptador que implementa LLMService usando la API REST de
// Anthropic (Claude). Usa net/http; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

type anthropicContentBlock struct {
	Type   string           `json:"type"` // "text" o "image"
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"` // "base64"
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque Claude lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// ExtractInvoiceFields envía la imagen del documento a Claude como bloque de
// visión y devuelve los campos sugeridos.
func (s *AnthropicService) ExtractInvoiceFields(ctx context.Context, imageBase64, mimeType string) (*dto.AIExtractionDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicExtractPrompt,
		Messages: []anthropicMessage{
			{
				Role: "user",
				Content: []anthropicContentBlock{
					{
						Type: "image",
						Source: &anthropicSource{
							Type:      "base64",
							MediaType: mimeType,
							Data:      imageBase64,
						},
					},
					{Type: "text", Text: "Extraia os campos desta nota fiscal."},
				},
			},
		},
	}

	rawText, err := s.message(ctx, payload)
	if err != nil {
		return nil, err
	}

	// Parseo seguro: extraer solo el bloque JSON aunque Claude añada texto adicional.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}

	var extraction llmExtractionPayload
	if err := json.Unmarshal([]byte(cleanJSON), &extraction); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de extracción: %w (JSON extraído: %s)", err, cleanJSON)
	}

	return &dto.AIExtractionDTO{
		SupplierName:  extraction.SupplierName,
		SupplierCNPJ:  extraction.SupplierCNPJ,
		InvoiceNumber: extraction.InvoiceNumber,
		EmissionDate:  extraction.EmissionDate,
		OrderNumber:   extraction.OrderNumber,
		Value:         extraction.Value,
		Confidence:    clampConfidence(extraction.Confidence),
	}, nil
}

// SummarizeInvoices genera el resumen financiero del conjunto recibido.
func (s *AnthropicService) SummarizeInvoices(ctx context.Context, invoices []*entity.Invoice) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		Messages: []anthropicMessage{
			{
				Role: "user",
				Content: []anthropicContentBlock{
					{Type: "text", Text: summaryPromptHeader + "\n\n" + invoicesAsText(invoices)},
				},
			},
		},
	}

	text, err := s.message(ctx, payload)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// message ejecuta la llamada HTTP y devuelve el texto del primer bloque.
func (s *AnthropicService) message(ctx context.Context, payload anthropicRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return anthResp.Content[0].Text, nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Primero elimina bloques de código markdown, luego captura el primer { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
