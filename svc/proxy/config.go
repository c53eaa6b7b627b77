package proxy

import "time"

// Config carries the upstream endpoints and secrets for both functions.
// Secrets are deliberately not required at parse time: a deployment that
// never calls a function may omit its secret, and the handler reports the
// gap as a 500 on first use instead.
type Config struct {
	// WhatsApp Cloud API.
	WhatsAppAPIURL  string `env:"WHATSAPP_API_URL" envDefault:"https://graph.facebook.com/v19.0"`
	WhatsAppToken   string `env:"WHATSAPP_API_TOKEN"`
	WhatsAppPhoneID string `env:"WHATSAPP_PHONE_NUMBER_ID"`

	// Template used for the test-campaign message.
	WhatsAppTestTemplate string `env:"WHATSAPP_TEST_TEMPLATE" envDefault:"hello_world"`
	WhatsAppTestLang     string `env:"WHATSAPP_TEST_LANG" envDefault:"en_US"`

	// AI completions API.
	AssistantAPIURL string `env:"ASSISTANT_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	AssistantAPIKey string `env:"ASSISTANT_API_KEY"`
	AssistantModel  string `env:"ASSISTANT_MODEL" envDefault:"gpt-4o-mini"`

	UpstreamTimeout time.Duration `env:"PROXY_UPSTREAM_TIMEOUT" envDefault:"30s"`
}
