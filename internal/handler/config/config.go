package config

type Config struct {
	ServerAddr      string `validate:"required"`
	SignatureHeader string `validate:"required"`
	// Общий секрет подписи вебхуков
	WebhookSecret string `validate:"required"`
}
