package dto

// ChatMessageDTO is a message sent to the learning chatbot.
type ChatMessageDTO struct {
	Message string `json:"message" binding:"required"`
}

// ChatReplyDTO is the chatbot's answer.
type ChatReplyDTO struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions,omitempty"`
}
