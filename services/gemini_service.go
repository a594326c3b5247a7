package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// User-facing fallbacks. Callers always get a displayable string; transport
// and shape failures never leak raw errors to the chat.
const (
	MsgGeminiKeyMissing   = "API key is not configured. Please set the GEMINI_API_KEY environment variable."
	MsgGeminiBadResponse  = "I received an unexpected response format from the AI service. Please try again."
	MsgGeminiRequestError = "I'm sorry, I encountered an error while processing your request. Please try again later."
)

type GeminiService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewGeminiService reads the API key from the environment. A missing key is
// not fatal; the feature degrades to a fixed explanatory message.
func NewGeminiService() *GeminiService {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		log.Println("no Gemini API key found; AI assistant will answer with a configuration notice")
	}
	return &GeminiService{
		apiKey: key,
		apiURL: defaultGeminiURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

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
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateResponse sends the prompt to the generateContent endpoint and
// returns the first candidate's first part. Every failure path collapses to a
// static user-facing string.
func (s *GeminiService) GenerateResponse(prompt string) string {
	if s.apiKey == "" {
		return MsgGeminiKeyMissing
	}

	text, err := s.generate(prompt)
	if err != nil {
		log.Printf("gemini request failed: %v", err)
		return MsgGeminiRequestError
	}
	if text == "" {
		return MsgGeminiBadResponse
	}
	return text
}

func (s *GeminiService) generate(prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s?key=%s", s.apiURL, s.apiKey), bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		// well-formed JSON in an unexpected shape; caller shows the
		// format notice rather than the apology
		return "", nil
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
