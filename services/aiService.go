package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"google.golang.org/genai"
)

const aiModel = "gemini-2.0-flash"

// ErrAIUnavailable covers any transport, auth or quota failure against the
// generative AI service. Handlers map it to a uniform 500.
var ErrAIUnavailable = errors.New("AI assistant unavailable")

type AIService struct {
	client *genai.Client
}

var aiService *AIService

// InitAIService creates the Gemini client. The API key is a required
// environment variable so a nil service only occurs in tests.
func InitAIService() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set. AI endpoints will not be available.")
		return
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Failed to initialize AI client: %v", err)
		return
	}

	aiService = &AIService{client: client}
	log.Println("AI service initialized")
}

func GetAIService() *AIService {
	return aiService
}

type AdCopy struct {
	Name    string `json:"name"`
	AltText string `json:"altText"`
}

// GenerateAdCopy asks the model for a short name and alt-text for the image
// at the given URL, constrained to a two-field JSON schema. When the model
// replies with unparseable text the raw reply is returned alongside the
// error so the handler can echo it as diagnostics.
func (s *AIService) GenerateAdCopy(ctx context.Context, url string) (*AdCopy, string, error) {
	if s == nil || s.client == nil {
		return nil, "", ErrAIUnavailable
	}

	prompt := fmt.Sprintf(
		"Look at the advertisement image at %s. Reply with a short, catchy name for it (at most 6 words) and a concise alt-text describing it for screen readers (at most 20 words).",
		url,
	)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":    {Type: genai.TypeString},
				"altText": {Type: genai.TypeString},
			},
			Required: []string{"name", "altText"},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, aiModel, genai.Text(prompt), config)
	if err != nil {
		log.Printf("AI ad-copy call failed: %v", err)
		return nil, "", ErrAIUnavailable
	}

	raw := resp.Text()

	var copy AdCopy
	if err := json.Unmarshal([]byte(raw), &copy); err != nil {
		return nil, raw, fmt.Errorf("AI returned invalid JSON: %w", err)
	}

	return &copy, raw, nil
}

// Chat forwards the user's question with the assembled context digest as a
// system instruction and relays the model's free-text answer verbatim.
func (s *AIService) Chat(ctx context.Context, question string, systemInstruction string) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrAIUnavailable
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, aiModel, genai.Text(question), config)
	if err != nil {
		log.Printf("AI chat call failed: %v", err)
		return "", ErrAIUnavailable
	}

	return resp.Text(), nil
}
