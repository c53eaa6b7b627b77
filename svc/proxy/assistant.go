package proxy

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

type assistantRequest struct {
	Prompt string `json:"prompt"`
	// Optional conversation history, oldest first.
	History []assistantMessage `json:"history,omitempty"`
}

type assistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string             `json:"model"`
	Messages []assistantMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message assistantMessage `json:"message"`
	} `json:"choices"`
}

const assistantSystemPrompt = "You are a helpful assistant for a sales CRM. " +
	"Answer questions about leads, campaigns and outreach concisely."

// HandleAssistant forwards a prompt to the AI completions API and returns
// the first choice's content.
func (s *Service) HandleAssistant(w http.ResponseWriter, r *http.Request) {
	if s.cfg.AssistantAPIKey == "" {
		s.log.ErrorContext(r.Context(), "assistant proxy misconfigured")
		writeError(w, fmt.Errorf("%w: assistant api key", ErrMissingSecret))
		return
	}

	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error()))
		return
	}
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		writeError(w, fmt.Errorf("%w: prompt is required", ErrInvalidRequest))
		return
	}

	messages := make([]assistantMessage, 0, len(req.History)+2)
	messages = append(messages, assistantMessage{Role: "system", Content: assistantSystemPrompt})
	messages = append(messages, req.History...)
	messages = append(messages, assistantMessage{Role: "user", Content: req.Prompt})

	headers := map[string]string{"Authorization": "Bearer " + s.cfg.AssistantAPIKey}

	var completion completionResponse
	err := s.postJSON(r.Context(), s.cfg.AssistantAPIURL, headers, completionRequest{
		Model:    s.cfg.AssistantModel,
		Messages: messages,
	}, &completion)
	if err != nil {
		s.log.ErrorContext(r.Context(), "assistant completion failed", slog.Any("error", err))
		writeError(w, err)
		return
	}

	reply := ""
	if len(completion.Choices) > 0 {
		reply = completion.Choices[0].Message.Content
	}
	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}
