package provider

import (
	"os"

	"github.com/joho/godotenv"
)

// API key environment variables.
const (
	AnthropicKeyEnv = "ANTHROPIC_API_KEY"
	OpenAIKeyEnv    = "OPENAI_API_KEY"
)

// LoadEnv loads API keys from a .env file in the working directory if one
// exists. Variables already present in the environment win.
func LoadEnv() {
	_ = godotenv.Load()
}

// HasAnthropicKey reports whether a completion API key is available.
func HasAnthropicKey() bool {
	return os.Getenv(AnthropicKeyEnv) != ""
}
