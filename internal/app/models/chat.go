package models

// ChatTurn is one message in the assistant conversation, cached in redis as
// the rolling context window for the chat-completion endpoint.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
