package proxy

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// whatsappTestRequest is what the dashboard sends when an operator clicks
// "send test message" on a campaign.
type whatsappTestRequest struct {
	Phone string `json:"phone"`
}

// whatsappMessage is the Cloud API message envelope for a template send.
type whatsappMessage struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Template         whatsappTemplate `json:"template"`
}

type whatsappTemplate struct {
	Name     string               `json:"name"`
	Language whatsappTemplateLang `json:"language"`
}

type whatsappTemplateLang struct {
	Code string `json:"code"`
}

type whatsappSendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// HandleWhatsAppTest sends the fixed test-campaign template to one phone
// number through the WhatsApp Cloud API.
func (s *Service) HandleWhatsAppTest(w http.ResponseWriter, r *http.Request) {
	if s.cfg.WhatsAppToken == "" || s.cfg.WhatsAppPhoneID == "" {
		s.log.ErrorContext(r.Context(), "whatsapp proxy misconfigured",
			slog.Bool("token_set", s.cfg.WhatsAppToken != ""),
			slog.Bool("phone_id_set", s.cfg.WhatsAppPhoneID != ""))
		writeError(w, fmt.Errorf("%w: whatsapp credentials", ErrMissingSecret))
		return
	}

	var req whatsappTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error()))
		return
	}
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Phone == "" {
		writeError(w, fmt.Errorf("%w: phone is required", ErrInvalidRequest))
		return
	}

	msg := whatsappMessage{
		MessagingProduct: "whatsapp",
		To:               req.Phone,
		Type:             "template",
		Template: whatsappTemplate{
			Name:     s.cfg.WhatsAppTestTemplate,
			Language: whatsappTemplateLang{Code: s.cfg.WhatsAppTestLang},
		},
	}

	url := fmt.Sprintf("%s/%s/messages", strings.TrimRight(s.cfg.WhatsAppAPIURL, "/"), s.cfg.WhatsAppPhoneID)
	headers := map[string]string{"Authorization": "Bearer " + s.cfg.WhatsAppToken}

	var sent whatsappSendResponse
	if err := s.postJSON(r.Context(), url, headers, msg, &sent); err != nil {
		s.log.ErrorContext(r.Context(), "whatsapp test send failed", slog.Any("error", err))
		writeError(w, err)
		return
	}

	messageID := ""
	if len(sent.Messages) > 0 {
		messageID = sent.Messages[0].ID
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message_id": messageID,
	})
}
