package service

import (
	"fmt"

	"github.com/fadilmartias/transcript-analyzer/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenRouterServiceInterface interface {
	ParseTranscript(rawText string) (string, error)
}

// OpenRouterService is the fallback transcript parser, used when Gemini is
// unavailable. It returns the same transcript JSON schema.
type OpenRouterService struct {
	APIKey string
}

func NewOpenRouterService() *OpenRouterService {
	return &OpenRouterService{
		APIKey: config.LoadOpenRouterConfig().APIKey,
	}
}

func (s *OpenRouterService) ParseTranscript(rawText string) (string, error) {
	prompt := fmt.Sprintf(`
You are a transcript parser. Extract every course row from the academic transcript below.
Return your answer STRICTLY in JSON format:
{
  "university": "<university name, empty string if unknown>",
  "courses": [
    {
      "code": "<raw course code, e.g. CS 61A>",
      "name": "<course name if present>",
      "grade": "<raw grade token: A+..F, P, NP, CR, NC, S, U, W, I, IP>",
      "units": <integer, 3 if not shown>,
      "semester": "<semester label, e.g. Fall 2023>",
      "is_graduate": <bool>,
      "is_transfer": <bool>,
      "is_ap": <bool>
    }
  ]
}

Transcript:
%s
`, rawText)

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": "openai/gpt-4o-mini",
			"messages": []map[string]string{
				{"role": "system", "content": "You are an AI extracting structured data from academic transcripts."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("https://openrouter.ai/api/v1/chat/completions")
	if err != nil {
		return "", err
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
