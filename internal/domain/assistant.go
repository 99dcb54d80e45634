package domain

import "context"

// ChatMessage is a single turn of an assistant conversation
type ChatMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// AssistantService defines the interface for the external AI assistant
type AssistantService interface {
	Chat(ctx context.Context, message string, history []ChatMessage) (string, error)
}

// AssistantServiceError represents an assistant service error with status code
type AssistantServiceError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *AssistantServiceError) Error() string {
	return e.Message
}
