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

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// extractPrompt define el rol del modelo y el formato de salida de la
	// extracción. Con responseMimeType=application/json Gemini devuelve JSON
	// puro, sin bloques de markdown que limpiar.
	extractPrompt = `Você é um assistente especializado em notas fiscais brasileiras (NF-e, DANFE, boletos).
Analise a imagem do documento e devolva SOMENTE um objeto JSON com esta estrutura exata:
{
  "supplierName": "<razão social ou nome fantasia do emitente>",
  "supplierCnpj": "<CNPJ do emitente, apenas dígitos ou formatado>",
  "invoiceNumber": "<número da nota fiscal>",
  "emissionDate": "<data de emissão em formato yyyy-mm-dd>",
  "orderNumber": "<número do pedido de compra, se visível>",
  "value": "<valor total como decimal com ponto, ex: 1234.56>",
  "confidence": <número decimal entre 0.0 e 1.0>
}

Regras:
- Campos que não aparecem no documento ficam como string vazia.
- value SEMPRE com ponto decimal, sem símbolo de moeda nem separador de milhar.
- confidence: 0.9–1.0 = leitura clara, 0.7–0.89 = provável, <0.7 = estimado.
- Não inclua texto fora do JSON.`

	summaryPromptHeader = `Você é um analista financeiro. Abaixo está a lista de notas fiscais registradas no portal.
Escreva um resumo executivo em português (máximo 150 palavras): valor total, fornecedores mais relevantes,
quantas notas estão em análise, recebidas e pendentes, e qualquer concentração que mereça atenção.
Responda em texto corrido, sem markdown.`
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de
// Google Gemini. Usa net/http; no requiere SDK.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *geminiBlobPart `json:"inline_data,omitempty"`
}

type geminiBlobPart struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// llmExtractionPayload es el JSON que esperamos recibir del modelo.
type llmExtractionPayload struct {
	SupplierName  string  `json:"supplierName"`
	SupplierCNPJ  string  `json:"supplierCnpj"`
	InvoiceNumber string  `json:"invoiceNumber"`
	EmissionDate  string  `json:"emissionDate"`
	OrderNumber   string  `json:"orderNumber"`
	Value         string  `json:"value"`
	Confidence    float64 `json:"confidence"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ExtractInvoiceFields envía la imagen del documento a Gemini y devuelve los
// campos sugeridos para pre-llenar el formulario de postagem.
func (s *GeminiService) ExtractInvoiceFields(ctx context.Context, imageBase64, mimeType string) (*dto.AIExtractionDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: extractPrompt}},
		},
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{InlineData: &geminiBlobPart{MimeType: mimeType, Data: imageBase64}},
					{Text: "Extraia os campos desta nota fiscal."},
				},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.2, // baja temperatura para lecturas más deterministas
			MaxOutputTokens:  512,
		},
	}

	rawJSON, err := s.generate(ctx, payload)
	if err != nil {
		return nil, err
	}

	var extraction llmExtractionPayload
	if err := json.Unmarshal([]byte(rawJSON), &extraction); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}

	confidence := clampConfidence(extraction.Confidence)

	return &dto.AIExtractionDTO{
		SupplierName:  extraction.SupplierName,
		SupplierCNPJ:  extraction.SupplierCNPJ,
		InvoiceNumber: extraction.InvoiceNumber,
		EmissionDate:  extraction.EmissionDate,
		OrderNumber:   extraction.OrderNumber,
		Value:         extraction.Value,
		Confidence:    confidence,
	}, nil
}

// SummarizeInvoices genera el resumen financiero del conjunto recibido.
func (s *GeminiService) SummarizeInvoices(ctx context.Context, invoices []*entity.Invoice) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: summaryPromptHeader + "\n\n" + invoicesAsText(invoices)}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 512,
		},
	}

	text, err := s.generate(ctx, payload)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate ejecuta la llamada HTTP y devuelve el texto del primer candidato.
func (s *GeminiService) generate(ctx context.Context, payload geminiRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// invoicesAsText serializa el conjunto como líneas compactas para el prompt.
func invoicesAsText(invoices []*entity.Invoice) string {
	var b strings.Builder
	for _, inv := range invoices {
		fmt.Fprintf(&b, "- fornecedor=%s numero=%s emissao=%s valor=%s status=%s setor=%s\n",
			inv.SupplierName, inv.InvoiceNumber, inv.EmissionDate, inv.Value.StringFixed(2), inv.Status, inv.UserSector)
	}
	if b.Len() == 0 {
		return "(nenhuma nota registrada)"
	}
	return b.String()
}
