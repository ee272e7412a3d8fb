// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lifesync/backend/internal/application/adapter"
)

// maxInsightNotes caps how many notes are sent to the model per request.
const maxInsightNotes = 50

// GeminiService implements the InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsight produces a short reflective summary of the period's notes.
func (s *GeminiService) GenerateInsight(ctx context.Context, request *adapter.InsightRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.6)

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	insight, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return insight, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a thoughtful journaling companion. Your task is to read a user's reflection notes for one week and write a short, warm, encouraging insight about their week.

RULES:
- Write 2 to 4 sentences, addressed directly to the user ("you").
- Mention concrete themes from their notes, never invent events that are not there.
- If the mood trend is low, be gentle and supportive without being clinical.
- Do not give medical or psychological advice.
- Do not use bullet points, headings, or emoji. Plain prose only.

WEEK:`)
	sb.WriteString(fmt.Sprintf("\n- Period: %s to %s\n", request.PeriodStart, request.PeriodEnd))
	sb.WriteString(fmt.Sprintf("- Average mood (1-5): %s\n", request.AverageMood))
	if len(request.TopCategories) > 0 {
		sb.WriteString(fmt.Sprintf("- Most used categories: %s\n", strings.Join(request.TopCategories, ", ")))
	}

	sb.WriteString("\nNOTES:\n")
	notes := request.Notes
	if len(notes) > maxInsightNotes {
		notes = notes[:maxInsightNotes]
	}
	for _, note := range notes {
		sb.WriteString(fmt.Sprintf("- [%s] (%s, mood %d/5) %s\n",
			note.NotedOn, note.Category, note.MoodRating, note.Content))
	}

	sb.WriteString("\nRespond with the insight text only, no additional formatting.\n")

	return sb.String()
}

// parseResponse extracts the insight text from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	// Strip markdown fences if the model added them anyway
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	return strings.TrimSpace(textContent), nil
}
