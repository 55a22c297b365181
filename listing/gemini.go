package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"fresh-connect/domain"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-3-flash-preview"

const hostelPrompt = "List 5 realistic, high-quality hostels or PGs (paying guest accommodations) for students attending %s. " +
	"Provide name, specific location, monthly price range, a contact number/email, and a brief description."

// GeminiProvider asks a Gemini model for hostels, constraining the answer with a JSON schema.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) FetchHostels(ctx context.Context, institution string) ([]domain.Hostel, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(fmt.Sprintf(hostelPrompt, institution)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   hostelSchema(),
		})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return parseHostels(resp.Text())
}

func hostelSchema() *genai.Schema {
	fields := []string{"name", "location", "priceRange", "contact", "description"}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: lo.SliceToMap(fields, func(field string) (string, *genai.Schema) {
				return field, &genai.Schema{Type: genai.TypeString}
			}),
			Required: fields,
		},
	}
}

// parseHostels decodes the model answer. An empty answer means no listings;
// records missing a name are dropped and at most MaxHostels are kept.
func parseHostels(text string) ([]domain.Hostel, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Hostel{}, nil
	}
	var hostels []domain.Hostel
	if err := json.Unmarshal([]byte(text), &hostels); err != nil {
		return nil, fmt.Errorf("malformed listing payload: %w", err)
	}
	hostels = lo.Filter(hostels, func(h domain.Hostel, _ int) bool {
		return strings.TrimSpace(h.Name) != ""
	})
	if len(hostels) > MaxHostels {
		hostels = hostels[:MaxHostels]
	}
	return hostels, nil
}
