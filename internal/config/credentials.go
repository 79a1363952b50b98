package config

import "os"

// Credentials is the immutable record of provider API keys present in the
// environment at startup. Every field is optional; collaborators decide
// which keys they actually need.
type Credentials struct {
	OpenAIAPIKey    string
	AnthropicAPIKey string
	CohereAPIKey    string
	PineconeAPIKey  string
}

// LoadCredentials reads the provider keys from the environment. Called once
// at process start; the returned value is never mutated afterwards.
func LoadCredentials() Credentials {
	return Credentials{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		CohereAPIKey:    os.Getenv("COHERE_API_KEY"),
		PineconeAPIKey:  os.Getenv("PINECONE_API_KEY"),
	}
}

// KeyStatus pairs a credential name with whether a value is set.
type KeyStatus struct {
	Name string
	Set  bool
}

// Keys reports the status of every credential in a fixed display order.
func (c Credentials) Keys() []KeyStatus {
	return []KeyStatus{
		{"OPENAI_API_KEY", c.OpenAIAPIKey != ""},
		{"ANTHROPIC_API_KEY", c.AnthropicAPIKey != ""},
		{"COHERE_API_KEY", c.CohereAPIKey != ""},
		{"PINECONE_API_KEY", c.PineconeAPIKey != ""},
	}
}
