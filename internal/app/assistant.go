package app

import (
	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/external/assistant"
)

func (a *application) InitAssistantService() domain.AssistantService {
	return assistant.NewAssistantService(
		a.config.Assistant.URL,
		a.config.Assistant.APIKey,
		a.config.Assistant.Model,
		a.config.Assistant.MaxOutputTokens,
	)
}
