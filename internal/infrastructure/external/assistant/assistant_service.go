package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/burgerspot/rewards/internal/domain"
)

const personaPrompt = `You are 'BiteBot', the friendly and energetic AI assistant for BurgerSpot. Your goal is to help customers with a fun and positive attitude.

Your instructions:
1. Always be cheerful and use burger-related puns where appropriate (but don't overdo it!).
2. Your knowledge is strictly limited to BurgerSpot. This includes our menu, ingredients, special offers, and order process.
3. If a user asks about anything not related to BurgerSpot, politely steer the conversation back to burgers.
4. Keep your answers concise and helpful.
5. Do not use markdown formatting in your replies.`

const personaAck = "Got it! I'm BiteBot, ready to help with all things BurgerSpot! What's sizzling?"

type assistantServiceImpl struct {
	baseURL         string
	apiKey          string
	model           string
	maxOutputTokens int
	client          *retryablehttp.Client
}

// NewAssistantService creates a client for the generative language API
func NewAssistantService(baseURL, apiKey, model string, maxOutputTokens int) domain.AssistantService {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &assistantServiceImpl{
		baseURL:         baseURL,
		apiKey:          apiKey,
		model:           model,
		maxOutputTokens: maxOutputTokens,
		client:          client,
	}
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string        `json:"role"`
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Chat sends a message with its conversation history and returns the
// assistant's reply. The persona prompt is injected as the first turn
// of every conversation.
func (a *assistantServiceImpl) Chat(ctx context.Context, message string, history []domain.ChatMessage) (string, error) {
	contents := []content{
		{Role: "user", Parts: []contentPart{{Text: personaPrompt}}},
		{Role: "model", Parts: []contentPart{{Text: personaAck}}},
	}

	for _, msg := range history {
		role := "model"
		if msg.From == "user" {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []contentPart{{Text: msg.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []contentPart{{Text: message}}})

	reqData := generateRequest{
		Contents:         contents,
		GenerationConfig: generationConfig{MaxOutputTokens: a.maxOutputTokens},
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.baseURL, a.model, a.apiKey)

	var resp generateResponse
	if err := a.sendRequest(ctx, url, reqData, &resp); err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &domain.AssistantServiceError{StatusCode: http.StatusBadGateway, Message: "assistant returned no candidates"}
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// sendRequest sends an HTTP request and decodes the response
func (a *assistantServiceImpl) sendRequest(ctx context.Context, url string, bodyData any, out any) error {
	jsonBytes, err := json.Marshal(bodyData)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &domain.AssistantServiceError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("assistant service error: unexpected status %d - %s", resp.StatusCode, string(respBody)),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
