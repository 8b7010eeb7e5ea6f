package dto

// SendMessageRequest posts a chat message as the current user
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,notblank,max=2000" example:"Anyone up for a study group?"`
}

// ReactRequest adds a reaction to a chat message
type ReactRequest struct {
	Kind string `json:"kind" binding:"omitempty,max=32" example:"like"`
}
