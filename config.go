package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jamesmstone/ghostclaw/internal/telegram"
)

const (
	envToken  = "TELEGRAM_BOT_TOKEN"
	envChatID = "TELEGRAM_TEST_CHAT_ID"

	defaultEnvFile = ".env"
)

// Config holds everything the check runner needs for one invocation.
// Credentials are resolved once at startup and never mutated afterwards.
type Config struct {
	Token   string
	ChatID  string
	APIRoot string
	Timeout time.Duration
	EnvFile string
}

func defaultConfig() *Config {
	return &Config{
		APIRoot: telegram.DefaultAPIRoot,
		Timeout: telegram.DefaultTimeout,
		EnvFile: defaultEnvFile,
	}
}

// resolveCredentials fills in the token and chat id. The environment wins;
// the env file is only consulted for the token when the variable is unset.
// A missing token is not an error — the caller handles the skip path.
func (c *Config) resolveCredentials() {
	c.Token = os.Getenv(envToken)
	if c.Token == "" {
		c.Token = tokenFromEnvFile(c.EnvFile)
	}
	if c.ChatID == "" {
		c.ChatID = os.Getenv(envChatID)
	}
}

// tokenFromEnvFile reads the bot token from a dotenv-style file.
// Returns "" when the file is absent, unreadable, or has no token line.
func tokenFromEnvFile(path string) string {
	if path == "" {
		return ""
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return ""
	}
	return values[envToken]
}
