package domain

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in the chat transcript.
type Message struct {
	Role    Role
	Content string
}

// ChatResult is the canonical shape of an assistant response: the answer
// text plus the citation labels backing it. Citations always describe the
// most recent turn only.
type ChatResult struct {
	Answer    string
	Citations []string
}
