package categorizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/GiraffosCom/boleta-scan/internal/catalog"
	"github.com/GiraffosCom/boleta-scan/internal/models"
)

// GeminiClient implements AIClient using the Google Gemini API.
type GeminiClient struct {
	APIKey string
	Model  string

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed AIClient. The connection is
// established lazily on first use.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiClient{APIKey: apiKey, Model: model}
}

func (g *GeminiClient) ensureClient(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return nil
	}
	if g.APIKey == "" {
		return fmt.Errorf("gemini api key not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	g.model = client.GenerativeModel(g.Model)
	return nil
}

// Categorize asks the model to pick one of the known category labels for
// the given receipt text.
func (g *GeminiClient) Categorize(ctx context.Context, receiptText string) (string, error) {
	if err := g.ensureClient(ctx); err != nil {
		return "", err
	}

	labels := make([]string, 0, len(catalog.ProductKeywords)+1)
	for _, ck := range catalog.ProductKeywords {
		labels = append(labels, ck.Category)
	}
	labels = append(labels, models.CategoryOther)

	prompt := fmt.Sprintf(`Clasifica la siguiente boleta de compra chilena en exactamente una de estas categorías:
%s

Texto de la boleta:
%s

Responde en este formato:
Categoria: [nombre de la categoría]`,
		strings.Join(labels, ", "), receiptText)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini api")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return extractCategoryFromResponse(responseText, labels), nil
}

// extractCategoryFromResponse parses the structured reply, falling back
// to scanning for any known label.
func extractCategoryFromResponse(response string, labels []string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Categoria:") {
			candidate := strings.TrimSpace(strings.TrimPrefix(line, "Categoria:"))
			candidate = strings.ToLower(strings.Trim(candidate, "[]"))
			for _, l := range labels {
				if candidate == l {
					return l
				}
			}
		}
	}
	lower := strings.ToLower(response)
	for _, l := range labels {
		if strings.Contains(lower, l) {
			return l
		}
	}
	return models.CategoryOther
}
