package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	APIBaseURL  string        `env:"CHAT_API_BASE_URL,default=http://127.0.0.1:8000" validate:"required,url"`
	WSBaseURL   string        `env:"CHAT_WS_BASE_URL,default=ws://127.0.0.1:8000" validate:"required"`
	LogLevel    string        `env:"LOG_LEVEL,required=true"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	DialTimeout time.Duration `env:"DIAL_TIMEOUT,default=10s"`
}

// Validate rejects a config the room client cannot run with.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.HTTPTimeout <= 0 || c.DialTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
